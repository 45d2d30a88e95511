package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/oapi-codegen/nullable"

	"github.com/naveenspark/folio/pkg/domain"
)

// SkillRequest is the payload for creating or updating a skill.
type SkillRequest struct {
	Name     string                 `json:"name"`
	Category domain.Category        `json:"category"`
	Level    nullable.Nullable[int] `json:"level"`
	IconPath string                 `json:"iconPath"`
}

// NewSkillRequest builds a payload; a nil level is sent as JSON null.
func NewSkillRequest(name string, cat domain.Category, level *int, iconPath string) SkillRequest {
	req := SkillRequest{Name: name, Category: cat, IconPath: iconPath}
	if level != nil {
		req.Level = nullable.NewNullableWithValue(*level)
	} else {
		req.Level = nullable.NewNullNullable[int]()
	}
	return req
}

// ListSkills fetches a page of skills, optionally filtered by category.
func (c *Client) ListSkills(ctx context.Context, page, limit int, category domain.Category) (*domain.Page[domain.Skill], error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", string(category))
	}
	p, err := listPage[domain.Skill](ctx, c, "/skills", "skills", page, limit, params)
	if err != nil {
		return nil, fmt.Errorf("client.ListSkills: %w", err)
	}
	return p, nil
}

// CreateSkill creates a new skill.
func (c *Client) CreateSkill(ctx context.Context, s SkillRequest) error {
	if err := c.post(ctx, "/skills", s, nil); err != nil {
		return fmt.Errorf("client.CreateSkill: %w", err)
	}
	return nil
}

// UpdateSkill replaces the skill with the given ID.
func (c *Client) UpdateSkill(ctx context.Context, id domain.ID, s SkillRequest) error {
	if err := c.put(ctx, "/skills/"+url.PathEscape(id.String()), s, nil); err != nil {
		return fmt.Errorf("client.UpdateSkill: %w", err)
	}
	return nil
}

// DeleteSkill deletes a skill.
func (c *Client) DeleteSkill(ctx context.Context, id domain.ID) error {
	if err := c.delete(ctx, "/skills/"+url.PathEscape(id.String())); err != nil {
		return fmt.Errorf("client.DeleteSkill: %w", err)
	}
	return nil
}
