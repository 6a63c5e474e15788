package daemon

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/models"
)

type RoleMappingOptionsResponse struct {
	Enabled bool                `json:"enabled"`
	Options []models.RoleOption `json:"options"`
}

type RoleMappingRequest struct {
	Application string            `json:"application"`
	Rows        []models.KeyValue `json:"rows"`
}

type RoleMappingResponse struct {
	Mappings []models.RoleMapping `json:"mappings"`
}

// getRoleMappingOptions handles GET /api/v1/role-mapping/options
//
//	@Summary		Role mapping options
//	@Description	List the local roles that can be mapped to application roles
//	@Tags			roles
//	@Produce		json
//	@Success		200	{object}	RoleMappingOptionsResponse
//	@Router			/role-mapping/options [get]
func (s *Server) getRoleMappingOptions(c *gin.Context) {
	if s.Mapping == nil || !s.Mapping.Enabled() {
		c.JSON(http.StatusOK, RoleMappingOptionsResponse{
			Enabled: false,
			Options: []models.RoleOption{},
		})
		return
	}

	// A failed load raises an alert and leaves the options empty
	_ = s.Mapping.Load(c.Request.Context())

	options := s.Mapping.Options()
	if options == nil {
		options = []models.RoleOption{}
	}

	c.JSON(http.StatusOK, RoleMappingOptionsResponse{
		Enabled: true,
		Options: options,
	})
}

// postRoleMappingNormalize handles POST /api/v1/role-mapping/normalize
//
//	@Summary		Normalize role mappings
//	@Description	Validate the role mapping editor rows and convert them to mappings
//	@Tags			roles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RoleMappingRequest	true	"Editor rows"
//	@Success		200		{object}	RoleMappingResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Router			/role-mapping/normalize [post]
func (s *Server) postRoleMappingNormalize(c *gin.Context) {
	if s.Mapping == nil || !s.Mapping.Enabled() {
		s.getErrorPage(c, http.StatusNotFound, "Role mapping is disabled")
		return
	}

	var request RoleMappingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid role mapping request", err)
		return
	}

	mappings, err := s.Mapping.Normalize(c.Request.Context(), request.Application, request.Rows)
	if err != nil {
		s.getErrorStatus(c, "Invalid role mappings", err)
		return
	}

	if mappings == nil {
		mappings = []models.RoleMapping{}
	}

	c.JSON(http.StatusOK, RoleMappingResponse{Mappings: mappings})
}

// getRolePermissions handles GET /api/v1/roles/:id/permissions
//
//	@Summary		Role permissions
//	@Description	Get the permissions of a role from the root or a sub organization
//	@Tags			roles
//	@Produce		json
//	@Param			id				path		string	true	"Role id"
//	@Param			organization	query		string	false	"Sub organization id"
//	@Param			hide			query		string	false	"Comma separated permissions to hide"
//	@Success		200				{object}	roles.RolePermissions
//	@Failure		404				{object}	models.ErrorResponse
//	@Router			/roles/{id}/permissions [get]
func (s *Server) getRolePermissions(c *gin.Context) {
	if s.Permissions == nil {
		s.getErrorStatus(c, "Role permissions unavailable", errBackendNotConfigured)
		return
	}

	var hide []string
	for _, value := range c.QueryArray("hide") {
		hide = append(hide, common.SplitAndTrim(value)...)
	}

	permissions, err := s.Permissions.Load(
		c.Request.Context(),
		c.Param("id"),
		c.Query("organization"),
		hide,
	)
	if err != nil {
		s.getErrorStatus(c, "Failed to load role permissions", err)
		return
	}

	c.JSON(http.StatusOK, permissions)
}
