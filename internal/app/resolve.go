package app

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoEmails = errors.New("no emails available")

type emailKind int

const (
	sentEmails emailKind = iota
	receivedEmails
)

func (k emailKind) String() string {
	if k == receivedEmails {
		return "received"
	}
	return "sent"
}

// resolveID returns provided unchanged when set. Otherwise it lists emails of
// the given kind and returns the first id in server order, which is newest
// first.
func resolveID(ctx context.Context, api emailService, kind emailKind, provided string) (string, error) {
	if provided != "" {
		return provided, nil
	}
	var ids []string
	switch kind {
	case receivedEmails:
		list, err := api.ListReceived(ctx)
		if err != nil {
			return "", fmt.Errorf("list %s emails: %w", kind, err)
		}
		for _, e := range list.Data {
			ids = append(ids, e.ID)
		}
	default:
		list, err := api.ListEmails(ctx)
		if err != nil {
			return "", fmt.Errorf("list %s emails: %w", kind, err)
		}
		for _, e := range list.Data {
			ids = append(ids, e.ID)
		}
	}
	if len(ids) == 0 {
		return "", ErrNoEmails
	}
	return ids[0], nil
}
