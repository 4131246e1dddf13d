package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/resend-cli/rusend/internal/config"
	"github.com/resend-cli/rusend/internal/model"
	"github.com/resend-cli/rusend/internal/resend"
)

type sendOptions struct {
	from        string
	to          string
	subject     string
	html        string
	text        string
	fromStdin   bool
	forwardID   string
	scheduledAt string

	hasHTML bool
	hasText bool
}

func (a App) newSendCommand(g *globalOptions) *cobra.Command {
	var opts sendOptions
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send one email (body from --html, --text, stdin, or a forwarded email)",
		Args:  usageArgs(cobra.NoArgs),
	}
	cmd.RunE = a.withClient(g, func(cmd *cobra.Command, _ []string, cfg config.AppConfig, api emailService) (any, error) {
		opts.hasHTML = cmd.Flags().Changed("html")
		opts.hasText = cmd.Flags().Changed("text")
		in := cmd.InOrStdin()
		readBody := func() (string, error) {
			if isTerminal(in) {
				fmt.Fprintln(a.Stderr, "Reading message body from stdin (finish with Ctrl-D)...")
			}
			b, err := io.ReadAll(in)
			return string(b), err
		}
		return cmdSend(cmd.Context(), api, cfg, opts, readBody)
	})
	flags := cmd.Flags()
	flags.StringVarP(&opts.from, "from", "f", "", `From header, e.g. "Acme <no-reply@acme.com>" (defaults to the configured address)`)
	flags.StringVarP(&opts.to, "to", "t", "", "recipients, comma separated (defaults to the configured addresses)")
	flags.StringVarP(&opts.subject, "subject", "s", "", "subject (defaults to \"Fwd: <original>\" when forwarding)")
	flags.StringVar(&opts.html, "html", "", "HTML body")
	flags.StringVar(&opts.text, "text", "", "plain text body")
	flags.BoolVar(&opts.fromStdin, "from-stdin", false, "read the HTML body from stdin")
	flags.StringVar(&opts.forwardID, "id", "", "forward the received email with this id")
	flags.StringVar(&opts.scheduledAt, "scheduled-at", "", "schedule delivery (ISO 8601 or natural language such as \"in 1 hour\")")
	return cmd
}

func cmdSend(ctx context.Context, api emailService, cfg config.AppConfig, opts sendOptions, readBody func() (string, error)) (any, error) {
	msg, err := buildMessage(ctx, api, cfg, opts, readBody)
	if err != nil {
		return nil, err
	}
	resp, err := api.SendEmail(ctx, toSendRequest(msg))
	if err != nil {
		return nil, remoteError("send failed", err)
	}
	return sendResponse{ID: resp.ID, ForwardedFrom: opts.forwardID}, nil
}

// buildMessage resolves addresses against the config defaults and picks the
// body: a forwarded email first, then stdin, then --html, then --text.
func buildMessage(ctx context.Context, api emailService, cfg config.AppConfig, opts sendOptions, readBody func() (string, error)) (model.EmailMessage, error) {
	from := strings.TrimSpace(firstNonEmpty(opts.from, deref(cfg.DefaultFrom)))
	if from == "" {
		return model.EmailMessage{}, validationError("a From address is required", "Pass --from or set one with rusend config --default-from")
	}
	to := ParseAddresses(firstNonEmpty(opts.to, deref(cfg.DefaultTo)))
	if len(to) == 0 {
		return model.EmailMessage{}, validationError("at least one To address is required", "Pass --to or set defaults with rusend config --default-to")
	}
	msg := model.EmailMessage{From: from, To: to, Subject: opts.subject, ScheduledAt: strings.TrimSpace(opts.scheduledAt)}

	if opts.forwardID != "" {
		orig, err := api.GetReceived(ctx, opts.forwardID)
		if err != nil {
			return model.EmailMessage{}, remoteError("fetch email to forward", err)
		}
		msg.Subject = forwardSubject(msg.Subject, orig.Subject)
		msg.HTML = orig.HTML
		msg.Text = orig.Text
		return msg, nil
	}

	if strings.TrimSpace(msg.Subject) == "" {
		return model.EmailMessage{}, validationError("--subject is required", "Pass --subject, or --id to forward a received email")
	}
	switch {
	case opts.fromStdin:
		body, err := readBody()
		if err != nil {
			return model.EmailMessage{}, cliError{exit: 1, code: "runtime_error", msg: "stdin read: " + err.Error(), err: err}
		}
		msg.HTML = &body
	case opts.hasHTML:
		msg.HTML = &opts.html
	case opts.hasText:
		msg.Text = &opts.text
	}
	return msg, nil
}

func (a App) newBatchCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file>",
		Short: "Send a batch of emails from a JSON file holding an array of messages",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: a.withClient(g, func(cmd *cobra.Command, args []string, _ config.AppConfig, api emailService) (any, error) {
			return cmdBatch(cmd.Context(), api, args[0])
		}),
	}
}

func cmdBatch(ctx context.Context, api emailService, path string) (any, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, validationError("read batch file: "+err.Error(), "")
	}
	msgs, err := parseBatch(b)
	if err != nil {
		return nil, validationError(err.Error(), "Each element needs from, to (a list) and subject")
	}
	reqs := lo.Map(msgs, func(m model.EmailMessage, _ int) *resend.SendEmailRequest {
		return toSendRequest(m)
	})
	resp, err := api.SendBatch(ctx, reqs)
	if err != nil {
		return nil, remoteError("batch send failed", err)
	}
	ids := lo.Map(resp.Data, func(r resend.SendEmailResponse, _ int) string { return r.ID })
	return batchResponse{IDs: ids, Count: len(ids)}, nil
}

// parseBatch decodes every element before anything is sent, so one bad record
// rejects the whole batch.
func parseBatch(b []byte) ([]model.EmailMessage, error) {
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("parse json: batch file is not valid UTF-8")
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("parse json: batch file contains no emails")
	}
	msgs := make([]model.EmailMessage, 0, len(raw))
	for i, r := range raw {
		var in model.BatchEmailInput
		if err := json.Unmarshal(r, &in); err != nil {
			return nil, fmt.Errorf("parse json: item %d: %w", i+1, err)
		}
		msgs = append(msgs, in.Message())
	}
	return msgs, nil
}
