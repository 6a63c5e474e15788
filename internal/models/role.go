package models

import (
	"strings"
)

const (
	// Role names carry their domain as a prefix, for example "Internal/admin".
	RoleDomainSeparator   = "/"
	InternalRoleDomain    = "Internal"
	ApplicationRoleDomain = "Application"

	AudienceTypeApplication  = "application"
	AudienceTypeOrganization = "organization"
)

type Role struct {
	ID          string       `json:"id"`
	DisplayName string       `json:"displayName"`
	Audience    RoleAudience `json:"audience"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// RoleAudience describes who a role applies to. Application audiences carry
// the application name in Display.
type RoleAudience struct {
	Type    string `json:"type"`
	Display string `json:"display,omitempty"`
	Value   string `json:"value,omitempty"`
}

type Permission struct {
	Value   string `json:"value"`
	Display string `json:"display,omitempty"`
}

func (r Role) GetID() string {
	return r.ID
}

func (r Role) GetDisplayName() string {
	return r.DisplayName
}

// ListLabel returns the display name without its domain prefix.
func (r Role) ListLabel() string {
	parts := strings.Split(r.DisplayName, RoleDomainSeparator)
	if len(parts) > 1 {
		return parts[1]
	}
	return r.DisplayName
}

// AudienceLabel returns the label shown next to a role in assignment lists.
func (r Role) AudienceLabel() ItemLabel {
	audienceType := strings.Split(r.Audience.Type, RoleDomainSeparator)

	if strings.EqualFold(audienceType[0], AudienceTypeApplication) {
		return ItemLabel{
			Name:     "audience-label",
			Text:     "Application",
			SubLabel: r.Audience.Display,
		}
	}

	return ItemLabel{
		Name: "audience-label",
		Text: "Organization",
	}
}

// HasDomain reports whether the role name starts with the given domain.
func (r Role) HasDomain(domain string) bool {
	return strings.Contains(r.DisplayName, domain+RoleDomainSeparator)
}

// ItemLabel is the secondary label rendered for a list item.
type ItemLabel struct {
	Name     string `json:"name"`
	Text     string `json:"text"`
	SubLabel string `json:"sub_label,omitempty"`
}

// RoleList is the SCIM list response for roles.
type RoleList struct {
	TotalResults int    `json:"totalResults"`
	StartIndex   int    `json:"startIndex,omitempty"`
	ItemsPerPage int    `json:"itemsPerPage,omitempty"`
	Resources    []Role `json:"Resources"`
}

// RoleListItem is a role as rendered in a transfer list.
type RoleListItem struct {
	ID      string    `json:"id"`
	Label   string    `json:"label"`
	Type    ItemLabel `json:"type"`
	Checked bool      `json:"checked"`
}

// RoleMapping maps a local role to a role name understood by an application.
type RoleMapping struct {
	LocalRole       string `json:"localRole"`
	ApplicationRole string `json:"applicationRole"`
}

// KeyValue is a row of the role mapping editor.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RoleOption is an entry of the local role dropdown.
type RoleOption struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}
