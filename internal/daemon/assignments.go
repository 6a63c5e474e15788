package daemon

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/thand-io/console/internal/roles"
	"github.com/thand-io/console/internal/transfer"
)

type AssignmentRequest struct {
	Subject     string   `json:"subject" binding:"required"`
	AssignedIDs []string `json:"assigned_ids"`
	Filter      string   `json:"filter"`
}

type AssignmentSideRequest struct {
	Side transfer.Side `json:"side" binding:"required"`
}

type AssignmentToggleRequest struct {
	Side transfer.Side `json:"side" binding:"required"`
	ID   string        `json:"id" binding:"required"`
}

type AssignmentSearchRequest struct {
	Side  transfer.Side `json:"side" binding:"required"`
	Query string        `json:"query"`
}

type AssignmentResponse struct {
	ID         string               `json:"id"`
	Assignment roles.AssignmentView `json:"assignment"`
}

// postAssignment handles POST /api/v1/assignments
//
//	@Summary		Open a role assignment
//	@Description	Load the role catalog and split it into available and assigned roles for a subject
//	@Tags			assignments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AssignmentRequest	true	"Subject and current roles"
//	@Success		201		{object}	AssignmentResponse
//	@Failure		503		{object}	models.ErrorResponse	"No identity server configured"
//	@Router			/assignments [post]
func (s *Server) postAssignment(c *gin.Context) {
	if !s.hasBackend() {
		s.getErrorStatus(c, "Role assignment unavailable", errBackendNotConfigured)
		return
	}

	var request AssignmentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid assignment request", err)
		return
	}

	assignment := roles.NewAssignment(s.backend, s.Audit, s.Alerts, roles.AssignmentOptions{
		Subject:     request.Subject,
		AssignedIDs: request.AssignedIDs,
		Filter:      request.Filter,
	})

	// A failed load leaves both lists empty and raises an alert
	if err := assignment.Load(c.Request.Context()); err != nil {
		logrus.WithError(err).WithField("subject", request.Subject).
			Warnln("Opened role assignment without roles")
	}

	id := s.Assignments.Add(assignment)

	c.JSON(http.StatusCreated, AssignmentResponse{
		ID:         id,
		Assignment: assignment.Snapshot(),
	})
}

// getAssignment handles GET /api/v1/assignments/:id
//
//	@Summary		Get a role assignment
//	@Tags			assignments
//	@Produce		json
//	@Param			id	path		string	true	"Assignment id"
//	@Success		200	{object}	AssignmentResponse
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/assignments/{id} [get]
func (s *Server) getAssignment(c *gin.Context) {
	s.withAssignment(c, func(*roles.Assignment) error { return nil })
}

// postAssignmentToggle handles POST /api/v1/assignments/:id/toggle
//
//	@Summary		Check or uncheck a role
//	@Tags			assignments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Assignment id"
//	@Param			request	body		AssignmentToggleRequest	true	"Side and role id"
//	@Success		200	{object}	AssignmentResponse
//	@Failure		400	{object}	models.ErrorResponse
//	@Router			/assignments/{id}/toggle [post]
func (s *Server) postAssignmentToggle(c *gin.Context) {
	var request AssignmentToggleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid toggle request", err)
		return
	}
	s.withAssignment(c, func(assignment *roles.Assignment) error {
		return assignment.Toggle(request.Side, request.ID)
	})
}

// postAssignmentSelectAll handles POST /api/v1/assignments/:id/select-all
//
//	@Summary		Check or uncheck every visible role
//	@Tags			assignments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Assignment id"
//	@Param			request	body		AssignmentSideRequest	true	"Side"
//	@Success		200	{object}	AssignmentResponse
//	@Router			/assignments/{id}/select-all [post]
func (s *Server) postAssignmentSelectAll(c *gin.Context) {
	var request AssignmentSideRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid select all request", err)
		return
	}
	s.withAssignment(c, func(assignment *roles.Assignment) error {
		return assignment.ToggleSelectAll(request.Side)
	})
}

// postAssignmentSearch handles POST /api/v1/assignments/:id/search
//
//	@Summary		Filter one side of an assignment
//	@Tags			assignments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Assignment id"
//	@Param			request	body		AssignmentSearchRequest	true	"Side and query"
//	@Success		200	{object}	AssignmentResponse
//	@Router			/assignments/{id}/search [post]
func (s *Server) postAssignmentSearch(c *gin.Context) {
	var request AssignmentSearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid search request", err)
		return
	}
	s.withAssignment(c, func(assignment *roles.Assignment) error {
		return assignment.Search(request.Side, request.Query)
	})
}

// postAssignmentAssign handles POST /api/v1/assignments/:id/assign
//
//	@Summary		Move checked roles to the assigned list
//	@Tags			assignments
//	@Produce		json
//	@Param			id	path		string	true	"Assignment id"
//	@Success		200	{object}	AssignmentResponse
//	@Router			/assignments/{id}/assign [post]
func (s *Server) postAssignmentAssign(c *gin.Context) {
	s.withAssignment(c, func(assignment *roles.Assignment) error {
		assignment.Assign()
		return nil
	})
}

// postAssignmentUnassign handles POST /api/v1/assignments/:id/unassign
//
//	@Summary		Move checked roles to the available list
//	@Tags			assignments
//	@Produce		json
//	@Param			id	path	string	true	"Assignment id"
//	@Success		200	{object}	AssignmentResponse
//	@Router			/assignments/{id}/unassign [post]
func (s *Server) postAssignmentUnassign(c *gin.Context) {
	s.withAssignment(c, func(assignment *roles.Assignment) error {
		assignment.Unassign()
		return nil
	})
}

// postAssignmentSubmit handles POST /api/v1/assignments/:id/submit
//
//	@Summary		Submit a role assignment
//	@Description	Return the assigned roles with the roles added and removed since the assignment was opened
//	@Tags			assignments
//	@Produce		json
//	@Param			id	path		string	true	"Assignment id"
//	@Success		200	{object}	roles.SubmitResult
//	@Router			/assignments/{id}/submit [post]
func (s *Server) postAssignmentSubmit(c *gin.Context) {
	assignment, err := s.Assignments.Get(c.Param("id"))
	if err != nil {
		s.getErrorStatus(c, "Assignment not found", err)
		return
	}

	result, err := assignment.Submit(c.Request.Context())
	if err != nil {
		s.getErrorStatus(c, "Failed to submit assignment", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// deleteAssignment handles DELETE /api/v1/assignments/:id
//
//	@Summary		Close a role assignment
//	@Tags			assignments
//	@Produce		json
//	@Param			id	path	string	true	"Assignment id"
//	@Success		204
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/assignments/{id} [delete]
func (s *Server) deleteAssignment(c *gin.Context) {
	// Removing closes the assignment
	if !s.Assignments.Remove(c.Param("id")) {
		s.getErrorPage(c, http.StatusNotFound, "Assignment not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) withAssignment(c *gin.Context, action func(*roles.Assignment) error) {
	id := c.Param("id")

	assignment, err := s.Assignments.Get(id)
	if err != nil {
		s.getErrorStatus(c, "Assignment not found", err)
		return
	}

	if err := action(assignment); err != nil {
		s.getErrorStatus(c, "Assignment action failed", err)
		return
	}

	c.JSON(http.StatusOK, AssignmentResponse{
		ID:         id,
		Assignment: assignment.Snapshot(),
	})
}
