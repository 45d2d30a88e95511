package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/naveenspark/folio/pkg/domain"
)

// ProjectInput is the project form submission.
type ProjectInput struct {
	Title       string
	Description string
	TechStack   []string
	RepoLink    string
	DemoLink    string
	Featured    bool
	// NewImages are local file paths uploaded as "images" parts.
	NewImages []string
	// KeepImages is the keep-list of already stored images to retain on
	// update. Stored images not listed are discarded by the API.
	KeepImages []string
}

func (in ProjectInput) multipart(withKeepList bool) (*Multipart, error) {
	stack := in.TechStack
	if stack == nil {
		stack = []string{}
	}
	stackJSON, err := json.Marshal(stack)
	if err != nil {
		return nil, fmt.Errorf("marshal techStack: %w", err)
	}

	body := NewMultipart().
		Field("title", in.Title).
		Field("description", in.Description).
		Field("repoLink", in.RepoLink).
		Field("demoLink", in.DemoLink).
		Field("featured", strconv.FormatBool(in.Featured)).
		Field("techStack", string(stackJSON))

	if withKeepList {
		keep := in.KeepImages
		if keep == nil {
			keep = []string{}
		}
		keepJSON, err := json.Marshal(keep)
		if err != nil {
			return nil, fmt.Errorf("marshal imagesToKeep: %w", err)
		}
		body.Field("imagesToKeep", string(keepJSON))
	}
	for _, path := range in.NewImages {
		body.File("images", path)
	}
	return body, nil
}

// ListProjects fetches a page of projects.
func (c *Client) ListProjects(ctx context.Context, page, limit int) (*domain.Page[domain.Project], error) {
	p, err := listPage[domain.Project](ctx, c, "/projects", "projects", page, limit, nil)
	if err != nil {
		return nil, fmt.Errorf("client.ListProjects: %w", err)
	}
	return p, nil
}

// CreateProject creates a project as multipart form data.
func (c *Client) CreateProject(ctx context.Context, in ProjectInput) error {
	body, err := in.multipart(false)
	if err != nil {
		return fmt.Errorf("client.CreateProject: %w", err)
	}
	if err := c.post(ctx, "/projects", body, nil); err != nil {
		return fmt.Errorf("client.CreateProject: %w", err)
	}
	return nil
}

// UpdateProject replaces a project, sending the keep-list of stored images.
func (c *Client) UpdateProject(ctx context.Context, id domain.ID, in ProjectInput) error {
	body, err := in.multipart(true)
	if err != nil {
		return fmt.Errorf("client.UpdateProject: %w", err)
	}
	if err := c.put(ctx, "/projects/"+url.PathEscape(id.String()), body, nil); err != nil {
		return fmt.Errorf("client.UpdateProject: %w", err)
	}
	return nil
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, id domain.ID) error {
	if err := c.delete(ctx, "/projects/"+url.PathEscape(id.String())); err != nil {
		return fmt.Errorf("client.DeleteProject: %w", err)
	}
	return nil
}
