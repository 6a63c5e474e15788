package daemon

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thand-io/console/internal/alerts"
	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/models"
)

const fetchInvitationsErrorDescription = "An error occurred while retrieving the guest invitations."

// InvitationClient lists the pending guest invitations of the organization.
type InvitationClient interface {
	ListInvitations(ctx context.Context) (*models.Invitations, error)
}

type InvitationsQuery struct {
	Status string `form:"status"` // Comma separated
}

type InvitationsResponse struct {
	Invitations []models.UserInvite `json:"invitations"`
}

// getInvitations handles GET /api/v1/invitations
//
//	@Summary		Guest invitations
//	@Description	List guest invitations with the roles they grant, built in roles omitted
//	@Tags			invitations
//	@Produce		json
//	@Param			status	query		string	false	"Comma separated statuses"
//	@Success		200		{object}	InvitationsResponse
//	@Failure		502		{object}	models.ErrorResponse
//	@Failure		503		{object}	models.ErrorResponse	"No identity server configured"
//	@Router			/invitations [get]
func (s *Server) getInvitations(c *gin.Context) {
	if !s.hasBackend() {
		s.getErrorStatus(c, "Invitations unavailable", errBackendNotConfigured)
		return
	}

	var request InvitationsQuery
	if err := c.ShouldBindQuery(&request); err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid invitation filter", err)
		return
	}

	invitations, err := s.backend.ListInvitations(c.Request.Context())
	if err != nil {
		s.Alerts.Push(alerts.FromFetchError(err, fetchInvitationsErrorDescription))
		s.getErrorStatus(c, "Failed to list invitations", err)
		return
	}

	statuses := common.SplitAndTrim(request.Status)

	found := []models.UserInvite{}
	for _, invite := range invitations.Invitations {
		if len(statuses) > 0 && !matchesStatus(invite.Status, statuses) {
			continue
		}

		granted := make([]string, 0, len(invite.Roles))
		for _, role := range invite.Roles {
			if !models.IsReservedRole(role) {
				granted = append(granted, role)
			}
		}
		invite.Roles = granted

		found = append(found, invite)
	}

	c.JSON(http.StatusOK, InvitationsResponse{Invitations: found})
}

func matchesStatus(status models.InviteStatus, statuses []string) bool {
	for _, candidate := range statuses {
		if strings.EqualFold(string(status), candidate) {
			return true
		}
	}
	return false
}
