package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/oapi-codegen/nullable"

	"github.com/naveenspark/folio/pkg/domain"
)

// JourneyRequest is the payload for creating or updating a journey entry.
// Exactly one of the role/company or degree/institution pairs is set,
// matching Type.
type JourneyRequest struct {
	Type        domain.JourneyKind        `json:"type"`
	Role        string                    `json:"role,omitempty"`
	Company     string                    `json:"company,omitempty"`
	Degree      string                    `json:"degree,omitempty"`
	Institution string                    `json:"institution,omitempty"`
	Description string                    `json:"description"`
	StartDate   string                    `json:"startDate"`
	EndDate     nullable.Nullable[string] `json:"endDate"`
}

// NewJourneyRequest builds the payload for an entry. A nil end date is
// sent as an explicit JSON null.
func NewJourneyRequest(detail domain.JourneyDetail, description string, start time.Time, end *time.Time) JourneyRequest {
	req := JourneyRequest{
		Description: description,
		StartDate:   domain.FormatDate(start),
	}
	switch d := detail.(type) {
	case domain.Experience:
		req.Type = domain.KindExperience
		req.Role, req.Company = d.Role, d.Company
	case domain.Education:
		req.Type = domain.KindEducation
		req.Degree, req.Institution = d.Degree, d.Institution
	}
	if end != nil {
		req.EndDate = nullable.NewNullableWithValue(domain.FormatDate(*end))
	} else {
		req.EndDate = nullable.NewNullNullable[string]()
	}
	return req
}

// ListJourney fetches a page of experience and education entries.
func (c *Client) ListJourney(ctx context.Context, page, limit int) (*domain.Page[domain.JourneyEntry], error) {
	p, err := listPage[domain.JourneyEntry](ctx, c, "/experience", "experiences", page, limit, nil)
	if err != nil {
		return nil, fmt.Errorf("client.ListJourney: %w", err)
	}
	return p, nil
}

// CreateJourney creates a journey entry.
func (c *Client) CreateJourney(ctx context.Context, j JourneyRequest) error {
	if err := c.post(ctx, "/experience", j, nil); err != nil {
		return fmt.Errorf("client.CreateJourney: %w", err)
	}
	return nil
}

// UpdateJourney replaces the journey entry with the given ID.
func (c *Client) UpdateJourney(ctx context.Context, id domain.ID, j JourneyRequest) error {
	if err := c.put(ctx, "/experience/"+url.PathEscape(id.String()), j, nil); err != nil {
		return fmt.Errorf("client.UpdateJourney: %w", err)
	}
	return nil
}

// DeleteJourney deletes a journey entry.
func (c *Client) DeleteJourney(ctx context.Context, id domain.ID) error {
	if err := c.delete(ctx, "/experience/"+url.PathEscape(id.String())); err != nil {
		return fmt.Errorf("client.DeleteJourney: %w", err)
	}
	return nil
}
