package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/resend-cli/rusend/internal/config"
	"github.com/resend-cli/rusend/internal/model"
	"github.com/resend-cli/rusend/internal/resend"
)

type emailService interface {
	SendEmail(ctx context.Context, req *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
	SendBatch(ctx context.Context, reqs []*resend.SendEmailRequest) (*resend.BatchEmailResponse, error)
	ListEmails(ctx context.Context) (*resend.EmailList, error)
	GetEmail(ctx context.Context, id string) (*model.SentEmail, error)
	UpdateEmail(ctx context.Context, req *resend.UpdateEmailRequest) (*resend.ObjectRef, error)
	CancelEmail(ctx context.Context, id string) (*resend.ObjectRef, error)
	ListReceived(ctx context.Context) (*resend.ReceivedEmailList, error)
	GetReceived(ctx context.Context, id string) (*model.ReceivedEmail, error)
}

var _ emailService = (*resend.Client)(nil)

type dialFunc func(apiKey string, env config.Env, log zerolog.Logger) emailService

func dialResend(apiKey string, env config.Env, log zerolog.Logger) emailService {
	return resend.NewClient(apiKey,
		resend.WithBaseURL(env.BaseURL),
		resend.WithTimeout(env.Timeout),
		resend.WithUserAgent("rusend/"+Version),
		resend.WithLogger(log),
	)
}

func toSendRequest(m model.EmailMessage) *resend.SendEmailRequest {
	req := &resend.SendEmailRequest{
		From:        m.From,
		To:          m.To,
		Subject:     m.Subject,
		ScheduledAt: m.ScheduledAt,
	}
	if m.HTML != nil {
		req.HTML = *m.HTML
	}
	if m.Text != nil {
		req.Text = *m.Text
	}
	return req
}
