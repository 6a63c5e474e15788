package daemon

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/thand-io/console/internal/editor"
	"github.com/thand-io/console/internal/models"
	"github.com/thand-io/console/internal/script"
)

// EditorRequest opens an editor for an application stored on the identity
// server, or for an inline sequence.
type EditorRequest struct {
	ApplicationID string `json:"application_id"`
	SequenceRequest
}

type SequenceRequest struct {
	Sequence *models.AuthenticationSequence `json:"sequence"`
	// StepCount defaults to the number of steps in Sequence
	StepCount       *int `json:"step_count,omitempty"`
	IsDefaultScript bool `json:"is_default_script"`
}

func (r SequenceRequest) stepCount() int {
	if r.StepCount != nil {
		return *r.StepCount
	}
	return r.Sequence.StepCount()
}

type ScriptRequest struct {
	Script string `json:"script"`
}

type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

type EditorResponse struct {
	ID     string         `json:"id"`
	Editor editor.View    `json:"editor"`
	Result *script.Result `json:"result,omitempty"`
}

type TemplateSelectionResponse struct {
	EditorResponse
	Template models.AdaptiveAuthTemplate `json:"template"`
}

// postEditor handles POST /api/v1/editors
//
//	@Summary		Open a script editor
//	@Description	Mount a script editor for an application or an inline sequence and remember it as the caller's current editor
//	@Tags			editors
//	@Accept			json
//	@Produce		json
//	@Param			request	body		EditorRequest	true	"Application or sequence"
//	@Success		201		{object}	EditorResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Router			/editors [post]
func (s *Server) postEditor(c *gin.Context) {
	var request EditorRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid editor request", err)
		return
	}

	if len(request.ApplicationID) == 0 && request.Sequence == nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid editor request",
			errors.New("either application_id or sequence is required"))
		return
	}

	id, session, err := s.Editors.Open(c.Request.Context(), request.ApplicationID)
	if err != nil {
		s.getErrorStatus(c, "Failed to open editor", err)
		return
	}

	var result *script.Result

	if request.Sequence != nil {
		res, err := s.applySequence(session, request.SequenceRequest)
		if err != nil {
			s.Editors.Close(id)
			s.getErrorStatus(c, "Failed to apply sequence", err)
			return
		}
		result = &res
	} else if s.hasBackend() {
		// A failed load is reported through the editor alerts
		res, err := session.LoadApplication(c.Request.Context())
		if err != nil {
			logrus.WithError(err).WithField("application", request.ApplicationID).
				Warnln("Editor opened without application")
		} else {
			result = &res
		}
	}

	rememberEditor(c, id)

	c.JSON(http.StatusCreated, EditorResponse{
		ID:     id,
		Editor: session.Snapshot(),
		Result: result,
	})
}

// getCurrentEditor handles GET /api/v1/editors/current
//
//	@Summary		Current editor
//	@Description	Get the editor last opened by the caller
//	@Tags			editors
//	@Produce		json
//	@Success		200	{object}	EditorResponse
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/editors/current [get]
func (s *Server) getCurrentEditor(c *gin.Context) {
	id, ok := currentEditor(c)
	if !ok {
		s.getErrorPage(c, http.StatusNotFound, "No current editor")
		return
	}
	s.respondEditor(c, id)
}

// getEditor handles GET /api/v1/editors/:id
//
//	@Summary		Get an editor
//	@Tags			editors
//	@Produce		json
//	@Param			id	path		string	true	"Editor id"
//	@Success		200	{object}	EditorResponse
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/editors/{id} [get]
func (s *Server) getEditor(c *gin.Context) {
	s.respondEditor(c, c.Param("id"))
}

func (s *Server) respondEditor(c *gin.Context, id string) {
	session, err := s.Editors.Get(id)
	if err != nil {
		s.getErrorStatus(c, "Editor not found", err)
		return
	}
	c.JSON(http.StatusOK, EditorResponse{ID: id, Editor: session.Snapshot()})
}

// putEditorSequence handles PUT /api/v1/editors/:id/sequence
//
//	@Summary		Update the sequence
//	@Description	Reconcile the editor with a changed authentication sequence
//	@Tags			editors
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Editor id"
//	@Param			request	body		SequenceRequest	true	"Sequence"
//	@Success		200		{object}	EditorResponse
//	@Router			/editors/{id}/sequence [put]
func (s *Server) putEditorSequence(c *gin.Context) {
	id := c.Param("id")

	var request SequenceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid sequence", err)
		return
	}

	session, err := s.Editors.Get(id)
	if err != nil {
		s.getErrorStatus(c, "Editor not found", err)
		return
	}

	result, err := s.applySequence(session, request)
	if err != nil {
		s.getErrorStatus(c, "Failed to apply sequence", err)
		return
	}

	c.JSON(http.StatusOK, EditorResponse{ID: id, Editor: session.Snapshot(), Result: &result})
}

func (s *Server) applySequence(session *editor.Session, request SequenceRequest) (script.Result, error) {
	stepCount := request.stepCount()
	if form := session.Form(); form != nil {
		form.Set(request.Sequence, stepCount, request.IsDefaultScript)
	}
	return session.SetSequence(request.Sequence, stepCount, request.IsDefaultScript)
}

// putEditorScript handles PUT /api/v1/editors/:id/script
//
//	@Summary		Edit the script
//	@Tags			editors
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Editor id"
//	@Param			request	body		ScriptRequest	true	"Script"
//	@Success		200		{object}	EditorResponse
//	@Router			/editors/{id}/script [put]
func (s *Server) putEditorScript(c *gin.Context) {
	id := c.Param("id")

	var request ScriptRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid script", err)
		return
	}

	s.withEditor(c, id, func(session *editor.Session) error {
		return session.Edit(request.Script)
	})
}

// postEditorTemplate handles POST /api/v1/editors/:id/templates/:name
//
//	@Summary		Apply a template
//	@Description	Select an adaptive authentication template and feed the resulting sequence back to the editor
//	@Tags			editors
//	@Produce		json
//	@Param			id		path		string	true	"Editor id"
//	@Param			name	path		string	true	"Template name"
//	@Success		200		{object}	TemplateSelectionResponse
//	@Failure		404		{object}	models.ErrorResponse
//	@Router			/editors/{id}/templates/{name} [post]
func (s *Server) postEditorTemplate(c *gin.Context) {
	id := c.Param("id")

	session, err := s.Editors.Get(id)
	if err != nil {
		s.getErrorStatus(c, "Editor not found", err)
		return
	}

	template, err := session.SelectTemplate(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.getErrorStatus(c, "Failed to select template", err)
		return
	}

	result, err := session.Feedback()
	if err != nil {
		s.getErrorStatus(c, "Failed to apply template", err)
		return
	}

	c.JSON(http.StatusOK, TemplateSelectionResponse{
		EditorResponse: EditorResponse{ID: id, Editor: session.Snapshot(), Result: &result},
		Template:       template,
	})
}

// postEditorToggle handles POST /api/v1/editors/:id/conditional-auth/toggle
//
//	@Summary		Toggle conditional authentication
//	@Description	Show the script editor, or ask for confirmation before hiding it
//	@Tags			editors
//	@Produce		json
//	@Param			id	path		string	true	"Editor id"
//	@Success		200	{object}	EditorResponse
//	@Router			/editors/{id}/conditional-auth/toggle [post]
func (s *Server) postEditorToggle(c *gin.Context) {
	s.withEditor(c, c.Param("id"), func(session *editor.Session) error {
		return session.ToggleConditionalAuth()
	})
}

// postEditorReset handles POST /api/v1/editors/:id/reset
//
//	@Summary		Confirm or cancel a script reset
//	@Tags			editors
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Editor id"
//	@Param			request	body		ResetRequest	true	"Confirmation"
//	@Success		200		{object}	EditorResponse
//	@Failure		409		{object}	models.ErrorResponse	"No reset awaiting confirmation"
//	@Router			/editors/{id}/reset [post]
func (s *Server) postEditorReset(c *gin.Context) {
	var request ResetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid reset request", err)
		return
	}

	s.withEditor(c, c.Param("id"), func(session *editor.Session) error {
		if !request.Confirm {
			session.CancelReset()
			return nil
		}
		return session.ConfirmReset(c.Request.Context())
	})
}

// deleteEditorAlert handles DELETE /api/v1/editors/:id/alerts/:index
//
//	@Summary		Dismiss an editor alert
//	@Tags			editors
//	@Produce		json
//	@Param			id		path	string	true	"Editor id"
//	@Param			index	path	int		true	"Alert index"
//	@Success		200	{object}	EditorResponse
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/editors/{id}/alerts/{index} [delete]
func (s *Server) deleteEditorAlert(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid alert index", err)
		return
	}

	s.withEditor(c, c.Param("id"), func(session *editor.Session) error {
		if !session.DismissAlert(index) {
			return fmt.Errorf("%w: alert %d", errAlertNotFound, index)
		}
		return nil
	})
}

// deleteEditor handles DELETE /api/v1/editors/:id
//
//	@Summary		Close an editor
//	@Tags			editors
//	@Param			id	path	string	true	"Editor id"
//	@Success		204
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/editors/{id} [delete]
func (s *Server) deleteEditor(c *gin.Context) {
	id := c.Param("id")

	if !s.Editors.Close(id) {
		s.getErrorPage(c, http.StatusNotFound, "Editor not found")
		return
	}

	forgetEditor(c, id)
	c.Status(http.StatusNoContent)
}

// withEditor runs action against the editor and answers with its view.
func (s *Server) withEditor(c *gin.Context, id string, action func(*editor.Session) error) {
	session, err := s.Editors.Get(id)
	if err != nil {
		s.getErrorStatus(c, "Editor not found", err)
		return
	}

	if err := action(session); err != nil {
		s.getErrorStatus(c, "Editor action failed", err)
		return
	}

	c.JSON(http.StatusOK, EditorResponse{ID: id, Editor: session.Snapshot()})
}
