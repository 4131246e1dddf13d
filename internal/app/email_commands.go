package app

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resend-cli/rusend/internal/config"
	"github.com/resend-cli/rusend/internal/resend"
)

func (a App) newListCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list [count]",
		Short: "List sent emails, newest first (default 10)",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: a.withClient(g, func(cmd *cobra.Command, args []string, _ config.AppConfig, api emailService) (any, error) {
			count, err := parseCount(args)
			if err != nil {
				return nil, err
			}
			return cmdList(cmd.Context(), api, count)
		}),
	}
}

// cmdList truncates the default listing client side; no limit is sent.
func cmdList(ctx context.Context, api emailService, count int) (any, error) {
	list, err := api.ListEmails(ctx)
	if err != nil {
		return nil, remoteError("list failed", err)
	}
	emails := list.Data
	if len(emails) > count {
		emails = emails[:count]
	}
	return emailListResponse{Emails: emails, Count: len(emails)}, nil
}

func (a App) newGetCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a sent email (the most recent one when id is omitted)",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: a.withClient(g, func(cmd *cobra.Command, args []string, _ config.AppConfig, api emailService) (any, error) {
			return cmdGet(cmd.Context(), api, optionalArg(args))
		}),
	}
}

func cmdGet(ctx context.Context, api emailService, id string) (any, error) {
	id, err := resolveID(ctx, api, sentEmails, id)
	if err != nil {
		return nil, remoteError("get failed", err)
	}
	email, err := api.GetEmail(ctx, id)
	if err != nil {
		return nil, remoteError("get failed", err)
	}
	return emailResponse{Email: *email}, nil
}

func (a App) newUpdateCommand(g *globalOptions) *cobra.Command {
	var scheduledAt string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a scheduled email",
		Args:  usageArgs(cobra.ExactArgs(1)),
	}
	cmd.RunE = a.withClient(g, func(cmd *cobra.Command, args []string, _ config.AppConfig, api emailService) (any, error) {
		req := &resend.UpdateEmailRequest{ID: strings.TrimSpace(args[0])}
		if cmd.Flags().Changed("scheduled-at") {
			req.ScheduledAt = strings.TrimSpace(scheduledAt)
		}
		return cmdUpdate(cmd.Context(), api, req)
	})
	cmd.Flags().StringVarP(&scheduledAt, "scheduled-at", "s", "", "new delivery time (ISO 8601 or natural language)")
	return cmd
}

func cmdUpdate(ctx context.Context, api emailService, req *resend.UpdateEmailRequest) (any, error) {
	if req.ID == "" {
		return nil, validationError("email id is required", "")
	}
	ref, err := api.UpdateEmail(ctx, req)
	if err != nil {
		return nil, remoteError("update failed", err)
	}
	return updateResponse{ID: ref.ID}, nil
}

func (a App) newCancelCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a scheduled email",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: a.withClient(g, func(cmd *cobra.Command, args []string, _ config.AppConfig, api emailService) (any, error) {
			return cmdCancel(cmd.Context(), api, strings.TrimSpace(args[0]))
		}),
	}
}

func cmdCancel(ctx context.Context, api emailService, id string) (any, error) {
	if id == "" {
		return nil, validationError("email id is required", "")
	}
	ref, err := api.CancelEmail(ctx, id)
	if err != nil {
		return nil, remoteError("cancel failed", err)
	}
	return cancelResponse{ID: ref.ID}, nil
}
