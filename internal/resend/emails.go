package resend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/resend-cli/rusend/internal/model"
)

type SendEmailRequest struct {
	From        string   `json:"from"`
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	HTML        string   `json:"html,omitempty"`
	Text        string   `json:"text,omitempty"`
	ScheduledAt string   `json:"scheduled_at,omitempty"`
}

type SendEmailResponse struct {
	ID string `json:"id"`
}

type BatchEmailResponse struct {
	Data []SendEmailResponse `json:"data"`
}

type EmailList struct {
	Object  string            `json:"object"`
	HasMore bool              `json:"has_more"`
	Data    []model.SentEmail `json:"data"`
}

// UpdateEmailRequest carries only the fields being changed.
type UpdateEmailRequest struct {
	ID          string `json:"-"`
	ScheduledAt string `json:"scheduled_at,omitempty"`
}

type ObjectRef struct {
	Object string `json:"object"`
	ID     string `json:"id"`
}

func emailPath(id string) string {
	return "/emails/" + url.PathEscape(id)
}

func (c *Client) SendEmail(ctx context.Context, req *SendEmailRequest) (*SendEmailResponse, error) {
	var out SendEmailResponse
	if err := c.do(ctx, http.MethodPost, "/emails", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendBatch(ctx context.Context, reqs []*SendEmailRequest) (*BatchEmailResponse, error) {
	c.log.Debug().Int("count", len(reqs)).Msg("sending batch")
	var out BatchEmailResponse
	if err := c.do(ctx, http.MethodPost, "/emails/batch", reqs, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListEmails(ctx context.Context) (*EmailList, error) {
	var out EmailList
	if err := c.do(ctx, http.MethodGet, "/emails", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetEmail(ctx context.Context, id string) (*model.SentEmail, error) {
	var out model.SentEmail
	if err := c.do(ctx, http.MethodGet, emailPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEmail(ctx context.Context, req *UpdateEmailRequest) (*ObjectRef, error) {
	var out ObjectRef
	if err := c.do(ctx, http.MethodPatch, emailPath(req.ID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelEmail(ctx context.Context, id string) (*ObjectRef, error) {
	var out ObjectRef
	if err := c.do(ctx, http.MethodPost, emailPath(id)+"/cancel", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
