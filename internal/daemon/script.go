package daemon

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/script"
)

type ReconcileRequest struct {
	Input script.Input       `json:"input"`
	State script.EditorState `json:"state"`
}

type DefaultScriptResponse struct {
	Steps  int    `json:"steps"`
	Script string `json:"script"`
}

// postScriptReconcile handles POST /api/v1/script/reconcile
//
//	@Summary		Reconcile a script
//	@Description	Run one stateless reconciliation pass of the script editor
//	@Tags			script
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ReconcileRequest	true	"Input and previous editor state"
//	@Success		200		{object}	script.Result		"Reconciliation result"
//	@Failure		400		{object}	models.ErrorResponse
//	@Router			/script/reconcile [post]
func (s *Server) postScriptReconcile(c *gin.Context) {
	var request ReconcileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid reconcile request", err)
		return
	}

	c.JSON(http.StatusOK, script.Reconcile(request.Input, request.State))
}

// getScriptDefault handles GET /api/v1/script/default?steps=N
//
//	@Summary		Default script
//	@Description	Get the default script of a sign on flow with N configured steps
//	@Tags			script
//	@Produce		json
//	@Param			steps	query		int	true	"Number of steps"
//	@Success		200		{object}	DefaultScriptResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Router			/script/default [get]
func (s *Server) getScriptDefault(c *gin.Context) {
	steps, ok := common.ParseStepCount(c.Query("steps"))
	if !ok {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid step count",
			fmt.Errorf("steps must be a whole number, got %q", c.Query("steps")))
		return
	}

	c.JSON(http.StatusOK, DefaultScriptResponse{
		Steps:  steps,
		Script: script.DefaultScriptFor(steps),
	})
}
