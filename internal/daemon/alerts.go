package daemon

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/thand-io/console/internal/alerts"
	"github.com/thand-io/console/internal/audit"
	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/models"
	"github.com/thand-io/console/internal/query"
)

type AlertsQuery struct {
	Level string     `form:"level"` // Comma separated
	Query string     `form:"query"`
	Since *time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit int        `form:"limit"`
}

type AlertsResponse struct {
	Alerts []models.Alert `json:"alerts"`
}

type EventsQuery struct {
	audit.ListOptions
	Filter string `form:"jq"`     // jq predicate applied to each event
	Format string `form:"format"` // "cloudevents" or empty
}

type EventsResponse struct {
	Events []audit.Event `json:"events"`
}

type CloudEventsResponse struct {
	Events []cloudevents.Event `json:"events"`
}

const eventFormatCloudEvents = "cloudevents"

// getAlerts handles GET /api/v1/alerts
//
//	@Summary		Service alerts
//	@Description	List alerts raised by role and template fetches, newest last
//	@Tags			alerts
//	@Produce		json
//	@Param			level	query		string	false	"Comma separated levels"
//	@Param			query	query		string	false	"Text to match"
//	@Param			since	query		string	false	"RFC 3339 time"
//	@Param			limit	query		int		false	"Maximum alerts"
//	@Success		200		{object}	AlertsResponse
//	@Router			/alerts [get]
func (s *Server) getAlerts(c *gin.Context) {
	var request AlertsQuery
	if err := c.ShouldBindQuery(&request); err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid alert filter", err)
		return
	}

	filter := alerts.AlertFilter{
		Since: request.Since,
		Query: request.Query,
		Limit: request.Limit,
	}
	for _, level := range common.SplitAndTrim(request.Level) {
		filter.Levels = append(filter.Levels, models.AlertLevel(level))
	}

	found := s.Alerts.Filter(filter)
	if found == nil {
		found = []models.Alert{}
	}

	c.JSON(http.StatusOK, AlertsResponse{Alerts: found})
}

// deleteAlerts handles DELETE /api/v1/alerts
//
//	@Summary		Clear alerts
//	@Tags			alerts
//	@Produce		json
//	@Success		204
//	@Router			/alerts [delete]
func (s *Server) deleteAlerts(c *gin.Context) {
	s.Alerts.Clear()
	c.Status(http.StatusNoContent)
}

// deleteAlert handles DELETE /api/v1/alerts/:index
//
//	@Summary		Dismiss an alert
//	@Tags			alerts
//	@Produce		json
//	@Param			index	path	int	true	"Alert index"
//	@Success		204
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/alerts/{index} [delete]
func (s *Server) deleteAlert(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid alert index", err)
		return
	}

	if !s.Alerts.Dismiss(index) {
		s.getErrorStatus(c, "Alert not found", fmt.Errorf("%w: alert %d", errAlertNotFound, index))
		return
	}

	c.Status(http.StatusNoContent)
}

// getEvents handles GET /api/v1/events
//
//	@Summary		Audit events
//	@Description	List recorded console events, newest first
//	@Tags			events
//	@Produce		json
//	@Param			type	query		string	false	"Event type"
//	@Param			subject	query		string	false	"Application or user"
//	@Param			since	query		string	false	"RFC 3339 time"
//	@Param			limit	query		int		false	"Maximum events"
//	@Param			jq		query		string	false	"jq predicate"
//	@Param			format	query		string	false	"Response format"	Enums(cloudevents)
//	@Success		200		{object}	EventsResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Router			/events [get]
func (s *Server) getEvents(c *gin.Context) {
	var request EventsQuery
	if err := c.ShouldBindQuery(&request); err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid event filter", err)
		return
	}

	if len(request.Format) > 0 && request.Format != eventFormatCloudEvents {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid event format",
			fmt.Errorf("unsupported format %q", request.Format))
		return
	}

	events, err := s.Audit.List(c.Request.Context(), request.ListOptions)
	if err != nil {
		s.getErrorPage(c, http.StatusInternalServerError, "Failed to list events", err)
		return
	}

	events, err = query.Filter(request.Filter, events)
	if err != nil {
		s.getErrorPage(c, http.StatusBadRequest, "Invalid jq filter", err)
		return
	}

	if events == nil {
		events = []audit.Event{}
	}

	if request.Format == eventFormatCloudEvents {
		converted, err := audit.ToCloudEvents(events)
		if err != nil {
			s.getErrorPage(c, http.StatusInternalServerError, "Failed to convert events", err)
			return
		}
		c.JSON(http.StatusOK, CloudEventsResponse{Events: converted})
		return
	}

	c.JSON(http.StatusOK, EventsResponse{Events: events})
}
