package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/naveenspark/folio/pkg/domain"
)

// ListContacts fetches a page of visitor messages.
func (c *Client) ListContacts(ctx context.Context, page, limit int) (*domain.Page[domain.Contact], error) {
	p, err := listPage[domain.Contact](ctx, c, "/contact", "contacts", page, limit, nil)
	if err != nil {
		return nil, fmt.Errorf("client.ListContacts: %w", err)
	}
	return p, nil
}

// DeleteContact deletes a visitor message.
func (c *Client) DeleteContact(ctx context.Context, id domain.ID) error {
	if err := c.delete(ctx, "/contact/"+url.PathEscape(id.String())); err != nil {
		return fmt.Errorf("client.DeleteContact: %w", err)
	}
	return nil
}
