package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/resend-cli/rusend/internal/config"
)

func (a App) newReceivedListCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "received-list [count]",
		Short: "List received emails (inbox), newest first (default 10)",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: a.withClient(g, func(cmd *cobra.Command, args []string, _ config.AppConfig, api emailService) (any, error) {
			count, err := parseCount(args)
			if err != nil {
				return nil, err
			}
			return cmdReceivedList(cmd.Context(), api, count)
		}),
	}
}

func cmdReceivedList(ctx context.Context, api emailService, count int) (any, error) {
	list, err := api.ListReceived(ctx)
	if err != nil {
		return nil, remoteError("list receiving failed", err)
	}
	emails := list.Data
	if len(emails) > count {
		emails = emails[:count]
	}
	return receivedListResponse{Emails: emails, Count: len(emails)}, nil
}

func (a App) newReceivedGetCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "received-get [id]",
		Short: "Show a received email (the most recent one when id is omitted)",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: a.withClient(g, func(cmd *cobra.Command, args []string, _ config.AppConfig, api emailService) (any, error) {
			return cmdReceivedGet(cmd.Context(), api, optionalArg(args))
		}),
	}
}

func cmdReceivedGet(ctx context.Context, api emailService, id string) (any, error) {
	id, err := resolveID(ctx, api, receivedEmails, id)
	if err != nil {
		return nil, remoteError("get receiving failed", err)
	}
	email, err := api.GetReceived(ctx, id)
	if err != nil {
		return nil, remoteError("get receiving failed", err)
	}
	return receivedResponse{Email: *email}, nil
}
