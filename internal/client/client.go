// Package client talks to the identity server management and SCIM APIs.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/thand-io/console/internal/models"
)

const (
	applicationPath          = "/applications/{id}"
	adaptiveAuthTemplatePath = "/applications/meta/adaptive-auth-templates"
	rolesPath                = "/scim2/v2/Roles"
	rolePath                 = "/scim2/v2/Roles/{id}"
	organizationRolePath     = "/organizations/{organization}/roles/{id}"
	invitationsPath          = "/guests/invitations"

	defaultTimeout = 30 * time.Second
)

type Client struct {
	client *resty.Client
}

// New creates a client for the configured backend.
func New(cfg models.BackendConfig) *Client {

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	if len(cfg.Token) > 0 {
		client.SetAuthToken(cfg.Token)
	}

	logrus.WithFields(logrus.Fields{
		"endpoint": cfg.Endpoint,
		"timeout":  timeout,
	}).Debugln("Created identity server client")

	return &Client{client: client}
}

// NewWithClient wraps an existing resty client.
func NewWithClient(client *resty.Client) *Client {
	return &Client{client: client}
}

func (c *Client) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	var application models.Application
	if err := c.get(ctx, applicationPath, map[string]string{"id": id}, nil, &application); err != nil {
		return nil, wrap("get application", err)
	}
	return &application, nil
}

func (c *Client) GetAdaptiveAuthTemplates(ctx context.Context) (*models.AdaptiveAuthTemplates, error) {
	var templates models.AdaptiveAuthTemplates
	if err := c.get(ctx, adaptiveAuthTemplatePath, nil, nil, &templates); err != nil {
		return nil, wrap("get adaptive auth templates", err)
	}
	return &templates, nil
}

// ListRoles lists roles, optionally narrowed with a SCIM filter expression.
func (c *Client) ListRoles(ctx context.Context, filter string) (*models.RoleList, error) {
	query := map[string]string{}
	if len(filter) > 0 {
		query["filter"] = filter
	}

	var roles models.RoleList
	if err := c.get(ctx, rolesPath, nil, query, &roles); err != nil {
		return nil, wrap("list roles", err)
	}
	return &roles, nil
}

func (c *Client) GetRoleByID(ctx context.Context, id string) (*models.Role, error) {
	var role models.Role
	if err := c.get(ctx, rolePath, map[string]string{"id": id}, nil, &role); err != nil {
		return nil, wrap("get role", err)
	}
	return &role, nil
}

func (c *Client) GetOrganizationRoleByID(ctx context.Context, organization, id string) (*models.Role, error) {
	var role models.Role
	params := map[string]string{"organization": organization, "id": id}
	if err := c.get(ctx, organizationRolePath, params, nil, &role); err != nil {
		return nil, wrap("get organization role", err)
	}
	return &role, nil
}

func (c *Client) ListInvitations(ctx context.Context) (*models.Invitations, error) {
	var invitations models.Invitations
	if err := c.get(ctx, invitationsPath, nil, nil, &invitations); err != nil {
		return nil, wrap("list invitations", err)
	}
	return &invitations, nil
}

func (c *Client) get(ctx context.Context, path string, params, query map[string]string, out any) error {

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParams(params).
		SetQueryParams(query).
		Get(path)

	logrus.WithFields(logrus.Fields{
		"path":   path,
		"params": params,
	}).Debugln("Sent identity server request")

	if err != nil {
		return err
	}

	if resp.IsError() {
		apiErr := newAPIError(resp)
		logrus.WithFields(logrus.Fields{
			"path":        path,
			"status":      apiErr.StatusCode,
			"code":        apiErr.Code,
			"description": apiErr.Description,
		}).Warnln("Identity server request failed")
		return apiErr
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
