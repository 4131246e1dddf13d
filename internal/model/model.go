package model

import (
	"encoding/json"
	"fmt"
)

type EmailMessage struct {
	From        string   `json:"from"`
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	HTML        *string  `json:"html,omitempty"`
	Text        *string  `json:"text,omitempty"`
	ScheduledAt string   `json:"scheduled_at,omitempty"`
}

type BatchEmailInput struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    *string  `json:"html,omitempty"`
	Text    *string  `json:"text,omitempty"`
}

// UnmarshalJSON requires the from, to and subject keys to be present.
func (b *BatchEmailInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		From    *string   `json:"from"`
		To      *[]string `json:"to"`
		Subject *string   `json:"subject"`
		HTML    *string   `json:"html"`
		Text    *string   `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.From == nil:
		return fmt.Errorf("missing field %q", "from")
	case raw.To == nil:
		return fmt.Errorf("missing field %q", "to")
	case raw.Subject == nil:
		return fmt.Errorf("missing field %q", "subject")
	}
	*b = BatchEmailInput{
		From:    *raw.From,
		To:      *raw.To,
		Subject: *raw.Subject,
		HTML:    raw.HTML,
		Text:    raw.Text,
	}
	return nil
}

func (b BatchEmailInput) Message() EmailMessage {
	return EmailMessage{
		From:    b.From,
		To:      append([]string{}, b.To...),
		Subject: b.Subject,
		HTML:    b.HTML,
		Text:    b.Text,
	}
}

type SentEmail struct {
	ID          string   `json:"id"`
	CreatedAt   string   `json:"created_at"`
	From        string   `json:"from"`
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	HTML        *string  `json:"html,omitempty"`
	Text        *string  `json:"text,omitempty"`
	LastEvent   string   `json:"last_event,omitempty"`
	ScheduledAt *string  `json:"scheduled_at,omitempty"`
}

type ReceivedEmail struct {
	ID        string   `json:"id"`
	CreatedAt string   `json:"created_at"`
	From      string   `json:"from"`
	To        []string `json:"to"`
	Subject   string   `json:"subject"`
	HTML      *string  `json:"html,omitempty"`
	Text      *string  `json:"text,omitempty"`
	MessageID string   `json:"message_id,omitempty"`
}
