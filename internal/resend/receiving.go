package resend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/resend-cli/rusend/internal/model"
)

type ReceivedEmailList struct {
	Object  string                `json:"object"`
	HasMore bool                  `json:"has_more"`
	Data    []model.ReceivedEmail `json:"data"`
}

func (c *Client) ListReceived(ctx context.Context) (*ReceivedEmailList, error) {
	var out ReceivedEmailList
	if err := c.do(ctx, http.MethodGet, "/emails/receiving", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetReceived(ctx context.Context, id string) (*model.ReceivedEmail, error) {
	var out model.ReceivedEmail
	if err := c.do(ctx, http.MethodGet, "/emails/receiving/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
