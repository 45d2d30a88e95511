package client

import (
	"context"
	"fmt"

	"github.com/naveenspark/folio/pkg/domain"
)

// GetHome returns the home section, or an empty one if none exists yet.
func (c *Client) GetHome(ctx context.Context) (*domain.Home, error) {
	var h *domain.Home
	if err := c.get(ctx, "/home", &h); err != nil {
		return nil, fmt.Errorf("client.GetHome: %w", err)
	}
	if h == nil {
		h = &domain.Home{}
	}
	return h, nil
}

// SaveHome upserts the home section.
func (c *Client) SaveHome(ctx context.Context, h domain.Home) error {
	if err := c.post(ctx, "/home", h, nil); err != nil {
		return fmt.Errorf("client.SaveHome: %w", err)
	}
	return nil
}

// GetAbout returns the about section, or an empty one if none exists yet.
func (c *Client) GetAbout(ctx context.Context) (*domain.About, error) {
	var a *domain.About
	if err := c.get(ctx, "/about", &a); err != nil {
		return nil, fmt.Errorf("client.GetAbout: %w", err)
	}
	if a == nil {
		a = &domain.About{}
	}
	return a, nil
}

// AboutInput is the about form submission. ResumeFile is a local path;
// empty keeps the stored resume.
type AboutInput struct {
	Content       string
	FrontendFocus string
	Performance   string
	ResumeFile    string
}

// SaveAbout upserts the about section as multipart form data.
func (c *Client) SaveAbout(ctx context.Context, in AboutInput) error {
	body := NewMultipart().
		Field("content", in.Content).
		Field("frontendFocus", in.FrontendFocus).
		Field("performance", in.Performance)
	if in.ResumeFile != "" {
		body.File("resume", in.ResumeFile)
	}
	if err := c.post(ctx, "/about", body, nil); err != nil {
		return fmt.Errorf("client.SaveAbout: %w", err)
	}
	return nil
}
