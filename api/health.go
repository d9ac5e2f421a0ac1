package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) healthz(c *gin.Context) {
	if err := s.surveyStore.Ping(c.Request.Context()); err != nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorServiceUnavailable, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
