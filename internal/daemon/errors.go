package daemon

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/thand-io/console/internal/client"
	"github.com/thand-io/console/internal/editor"
	"github.com/thand-io/console/internal/models"
	"github.com/thand-io/console/internal/roles"
	sessionManager "github.com/thand-io/console/internal/sessions"
	"github.com/thand-io/console/internal/transfer"
)

var (
	errBackendNotConfigured = errors.New("no identity server backend is configured")
	errAlertNotFound        = errors.New("alert not found")
)

// getErrorPage logs the errors and answers with an ErrorResponse. Details of
// internal errors are only written to the log.
func (s *Server) getErrorPage(c *gin.Context, code int, message string, err ...error) {

	var messages []string

	if len(err) == 0 {

		logrus.WithField("code", code).Errorln(message)

	} else {

		for _, e := range err {

			if e == nil {
				continue
			}

			logrus.WithError(e).WithField("code", code).Errorln(message)
			messages = append(messages, e.Error())
		}
	}

	// Don't show error details for 500 status codes
	showDetails := code != http.StatusInternalServerError
	errorMessage := fmt.Sprintf("An internal error occurred. Details are available in the logs at: %s.", time.Now().UTC().Format("2006-01-02 15:04:05"))

	if showDetails {
		errorMessage = strings.Join(messages, ". ")
	}

	c.AbortWithStatusJSON(code, models.ErrorResponse{
		Code:    code,
		Title:   message,
		Message: errorMessage,
	})
}

// getErrorStatus answers with the status matching a domain error.
func (s *Server) getErrorStatus(c *gin.Context, message string, err error) {
	s.getErrorPage(c, statusForError(err), message, err)
}

func statusForError(err error) int {
	var apiErr *client.APIError

	switch {
	case errors.Is(err, sessionManager.ErrSessionNotFound),
		errors.Is(err, editor.ErrTemplateNotFound),
		errors.Is(err, errAlertNotFound):
		return http.StatusNotFound
	case errors.Is(err, editor.ErrUnmounted),
		errors.Is(err, editor.ErrNoPendingReset),
		errors.Is(err, editor.ErrStaleResponse),
		errors.Is(err, roles.ErrStaleResponse):
		return http.StatusConflict
	case errors.Is(err, editor.ErrNoApplication),
		errors.Is(err, transfer.ErrUnknownSide),
		errors.Is(err, transfer.ErrUnknownItem),
		errors.Is(err, roles.ErrEmptyLocalRole),
		errors.Is(err, roles.ErrEmptyApplicationRole),
		errors.Is(err, roles.ErrDuplicateLocalRole):
		return http.StatusBadRequest
	case errors.Is(err, errBackendNotConfigured):
		return http.StatusServiceUnavailable
	case errors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
