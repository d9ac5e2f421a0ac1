package api

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeonSantana7/forms/stats"
)

const adminTokenHeader = "X-Admin-Token"

// surveyStats is the dashboard api. The admin token is checked before any
// store access; an unauthorized request never reaches the database.
func (s *Server) surveyStats(c *gin.Context) {
	token := c.GetHeader(adminTokenHeader)
	if s.adminToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
		abortWithEncoding(c, http.StatusUnauthorized, errorUnauthorized)
		return
	}

	responses, err := s.surveyStore.ListRecentResponses(s.statsFetchLimit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, stats.Compile(responses, time.Now()))
}
