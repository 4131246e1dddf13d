package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/resend-cli/rusend/internal/model"
)

const (
	htmlOnlyBody = "(HTML-only body; use --output json to view it)"
	emptyBody    = "(empty body)"
)

type configResponse struct {
	ConfigPath  string  `json:"configPath"`
	APIKey      string  `json:"apiKey"`
	DefaultFrom *string `json:"defaultFrom"`
	DefaultTo   *string `json:"defaultTo"`
}

func (r configResponse) Human(w io.Writer) error {
	_, err := fmt.Fprintf(w, "API key saved.\nConfig: %s\n", r.ConfigPath)
	return err
}

type sendResponse struct {
	ID            string `json:"id"`
	ForwardedFrom string `json:"forwardedFrom,omitempty"`
}

func (r sendResponse) Human(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Send request submitted. ID: %s\n", r.ID)
	return err
}

type batchResponse struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

func (r batchResponse) Human(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Batch send request submitted."); err != nil {
		return err
	}
	for _, id := range r.IDs {
		if _, err := fmt.Fprintf(w, "ID: %s\n", id); err != nil {
			return err
		}
	}
	return nil
}

type emailListResponse struct {
	Emails []model.SentEmail `json:"emails"`
	Count  int               `json:"count"`
}

func (r emailListResponse) Human(w io.Writer) error {
	for _, e := range r.Emails {
		if _, err := fmt.Fprintln(w, summaryLine(e.ID, e.CreatedAt, e.From, e.To)); err != nil {
			return err
		}
	}
	return nil
}

type emailResponse struct {
	Email model.SentEmail `json:"email"`
}

func (r emailResponse) Human(w io.Writer) error {
	e := r.Email
	return writeDetail(w, summaryLine(e.ID, e.CreatedAt, e.From, e.To), e.Subject, e.HTML, e.Text)
}

type receivedListResponse struct {
	Emails []model.ReceivedEmail `json:"emails"`
	Count  int                   `json:"count"`
}

func (r receivedListResponse) Human(w io.Writer) error {
	for _, e := range r.Emails {
		if _, err := fmt.Fprintln(w, summaryLine(e.ID, e.CreatedAt, e.From, e.To)); err != nil {
			return err
		}
	}
	return nil
}

type receivedResponse struct {
	Email model.ReceivedEmail `json:"email"`
}

func (r receivedResponse) Human(w io.Writer) error {
	e := r.Email
	return writeDetail(w, summaryLine(e.ID, e.CreatedAt, e.From, e.To), e.Subject, e.HTML, e.Text)
}

type updateResponse struct {
	ID string `json:"id"`
}

func (r updateResponse) Human(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Updated email with ID: %s\n", r.ID)
	return err
}

type cancelResponse struct {
	ID string `json:"id"`
}

func (r cancelResponse) Human(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Canceled: %s\n", r.ID)
	return err
}

func summaryLine(id, created, from string, to []string) string {
	return fmt.Sprintf("ID: %s, Created: %s, From: %s, To: [%s]", id, created, from, strings.Join(to, ", "))
}

func writeDetail(w io.Writer, summary, subject string, html, text *string) error {
	_, err := fmt.Fprintf(w, "%s\nSubject: %s\n\n%s\n", summary, subject, bodyText(html, text))
	return err
}

// bodyText picks what to show for a message body: text first, then a
// placeholder for HTML-only messages.
func bodyText(html, text *string) string {
	switch {
	case text != nil && *text != "":
		return *text
	case html != nil && *html != "":
		return htmlOnlyBody
	default:
		return emptyBody
	}
}
