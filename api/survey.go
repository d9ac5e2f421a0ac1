package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LeonSantana7/forms/gate"
	"github.com/LeonSantana7/forms/schema"
)

const (
	completedCookie = "survey_completed"
	clientIDCookie  = "survey_client_id"
	cookieMaxAge    = 365 * 24 * 60 * 60
)

// submitResponse is the api to record a filled survey. The completed cookie
// short-circuits repeat visits, the gate enforces the per-IP limit, and a
// successful submission marks the client as completed.
func (s *Server) submitResponse(c *gin.Context) {
	var params schema.SurveyResponse

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	completed := false
	if v, err := c.Cookie(completedCookie); err == nil && v == "true" {
		completed = true
	}

	clientID, err := c.Cookie(clientIDCookie)
	if err != nil || clientID == "" {
		clientID = uuid.New().String()
	}

	meta := gate.RequestMeta{
		IP:        firstForwardedAddress(c.GetHeader("X-Forwarded-For")),
		UserAgent: c.Request.UserAgent(),
		ClientID:  clientID,
		Completed: completed,
	}

	id, err := s.gate.Accept(params, meta)
	switch {
	case err == nil:
	case errors.Is(err, gate.ErrAlreadySubmitted):
		abortWithEncoding(c, http.StatusBadRequest, errorAlreadySubmitted)
		return
	case errors.Is(err, gate.ErrRateLimited):
		abortWithEncoding(c, http.StatusTooManyRequests, errorRateLimited)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorServiceUnavailable, err)
		return
	}

	log.WithField("id", id).Debug("survey response recorded")

	c.SetCookie(completedCookie, "true", cookieMaxAge, "/", "", false, false)
	c.SetCookie(clientIDCookie, clientID, cookieMaxAge, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// firstForwardedAddress keeps only the first hop of an X-Forwarded-For
// header. This approximates the client, it does not verify it. Loopback is
// the sentinel when the header is missing.
func firstForwardedAddress(forwarded string) string {
	ip := strings.TrimSpace(strings.Split(forwarded, ",")[0])
	if ip == "" {
		return "127.0.0.1"
	}
	return ip
}
