package daemon

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thand-io/console/internal/models"
)

type TemplatesResponse struct {
	Total   int                                                `json:"total"`
	Results []models.SearchResult[models.AdaptiveAuthTemplate] `json:"results"`
}

// getTemplates handles GET /api/v1/templates
//
//	@Summary		Adaptive authentication templates
//	@Description	List the template catalog, or search it by name, title, summary or category
//	@Tags			templates
//	@Produce		json
//	@Param			query	query		string		false	"Query string"
//	@Param			terms	query		[]string	false	"Terms that must all match"
//	@Param			limit	query		int			false	"Maximum results"
//	@Success		200		{object}	TemplatesResponse
//	@Router			/templates [get]
func (s *Server) getTemplates(c *gin.Context) {
	var request models.SearchRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid template search", err)
		return
	}

	if request.IsEmpty() {
		results := models.ReturnSearchResults(s.Templates.Catalog().List(),
			func(template models.AdaptiveAuthTemplate) string {
				return template.Name
			})
		c.JSON(http.StatusOK, TemplatesResponse{Total: len(results), Results: results})
		return
	}

	results, err := s.Templates.Search(c.Request.Context(), &request)
	if err != nil {
		s.getErrorPage(c, http.StatusInternalServerError, "Template search failed", err)
		return
	}

	c.JSON(http.StatusOK, TemplatesResponse{Total: len(results), Results: results})
}
