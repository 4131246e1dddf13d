package resend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	auth   string
	ctype  string
	body   []byte
}

func newServer(t *testing.T, status int, response string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.auth = r.Header.Get("Authorization")
		rec.ctype = r.Header.Get("Content-Type")
		rec.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return NewClient("re_test", WithBaseURL(srv.URL+"/")), rec
}

func TestSendEmail(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"id":"em_1"}`)

	resp, err := c.SendEmail(context.Background(), &SendEmailRequest{
		From:    "me@acme.com",
		To:      []string{"a@x.com"},
		Subject: "hi",
		Text:    "body",
	})
	require.NoError(t, err)
	assert.Equal(t, "em_1", resp.ID)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/emails", rec.path)
	assert.Equal(t, "Bearer re_test", rec.auth)
	assert.Equal(t, "application/json", rec.ctype)
	assert.JSONEq(t, `{"from":"me@acme.com","to":["a@x.com"],"subject":"hi","text":"body"}`, string(rec.body))
}

func TestSendBatch(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"data":[{"id":"em_1"},{"id":"em_2"}]}`)

	resp, err := c.SendBatch(context.Background(), []*SendEmailRequest{
		{From: "a@x.com", To: []string{"b@x.com"}, Subject: "one"},
		{From: "a@x.com", To: []string{"c@x.com"}, Subject: "two", HTML: "<p>2</p>"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "em_2", resp.Data[1].ID)
	assert.Equal(t, "/emails/batch", rec.path)

	var sent []map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Len(t, sent, 2)
}

func TestListAndGetEmail(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"object":"list","has_more":false,"data":[{"id":"em_2","created_at":"2026-01-02","from":"a@x.com","to":["b@x.com"],"subject":"s"}]}`)
	list, err := c.ListEmails(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "em_2", list.Data[0].ID)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/emails", rec.path)
	assert.Empty(t, rec.ctype)

	c, rec = newServer(t, http.StatusOK, `{"object":"email","id":"em_2","from":"a@x.com","to":["b@x.com"],"subject":"s","text":"hello","html":null}`)
	email, err := c.GetEmail(context.Background(), "em_2")
	require.NoError(t, err)
	assert.Equal(t, "/emails/em_2", rec.path)
	require.NotNil(t, email.Text)
	assert.Equal(t, "hello", *email.Text)
	assert.Nil(t, email.HTML)
}

func TestUpdateEmailSendsOnlyProvidedFields(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"object":"email","id":"em_3"}`)
	ref, err := c.UpdateEmail(context.Background(), &UpdateEmailRequest{ID: "em_3"})
	require.NoError(t, err)
	assert.Equal(t, "em_3", ref.ID)
	assert.Equal(t, http.MethodPatch, rec.method)
	assert.Equal(t, "/emails/em_3", rec.path)
	assert.JSONEq(t, `{}`, string(rec.body))

	c, rec = newServer(t, http.StatusOK, `{"object":"email","id":"em_3"}`)
	_, err = c.UpdateEmail(context.Background(), &UpdateEmailRequest{ID: "em_3", ScheduledAt: "in 1 hour"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"scheduled_at":"in 1 hour"}`, string(rec.body))
}

func TestCancelEmail(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"object":"email","id":"em_4"}`)
	ref, err := c.CancelEmail(context.Background(), "em_4")
	require.NoError(t, err)
	assert.Equal(t, "em_4", ref.ID)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/emails/em_4/cancel", rec.path)
}

func TestReceiving(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"object":"list","data":[{"id":"in_1","from":"x@y.com","to":["me@acme.com"],"subject":"Hello","created_at":"2026-01-01"}]}`)
	list, err := c.ListReceived(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "/emails/receiving", rec.path)

	c, rec = newServer(t, http.StatusOK, `{"id":"in_1","subject":"Hello","html":"<p>hi</p>"}`)
	got, err := c.GetReceived(context.Background(), "in_1")
	require.NoError(t, err)
	assert.Equal(t, "/emails/receiving/in_1", rec.path)
	assert.Equal(t, "Hello", got.Subject)
	require.NotNil(t, got.HTML)
}

func TestAPIErrorFromJSONBody(t *testing.T) {
	c, _ := newServer(t, http.StatusUnprocessableEntity, `{"statusCode":422,"name":"validation_error","message":"Invalid `+"`to`"+` field."}`)
	_, err := c.SendEmail(context.Background(), &SendEmailRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 422, apiErr.StatusCode)
	assert.Equal(t, "validation_error", apiErr.Name)
	assert.Contains(t, err.Error(), "Invalid `to` field.")
}

func TestAPIErrorFromPlainBody(t *testing.T) {
	c, _ := newServer(t, http.StatusNotFound, "not here")
	_, err := c.GetEmail(context.Background(), "nope")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.NotFound())
	assert.Equal(t, "resend: not here (404)", apiErr.Error())
}

func TestTransportErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient("re_test", WithBaseURL(url))
	_, err := c.ListEmails(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET /emails")

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
