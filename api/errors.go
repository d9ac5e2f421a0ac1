package api

import (
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"

	"github.com/LeonSantana7/forms/utils"
)

type errorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	messageID string
}

var (
	errorInternalServer     = errorResponse{Code: 1000, messageID: "error.internal_server"}
	errorInvalidParameters  = errorResponse{Code: 1001, messageID: "error.invalid_parameters"}
	errorUnauthorized       = errorResponse{Code: 1002, messageID: "error.unauthorized"}
	errorAlreadySubmitted   = errorResponse{Code: 1100, messageID: "error.already_submitted"}
	errorRateLimited        = errorResponse{Code: 1101, messageID: "error.rate_limited"}
	errorServiceUnavailable = errorResponse{Code: 1102, messageID: "error.service_unavailable"}
)

// abortWithEncoding ends the request with a localized error body. Underlying
// errors are logged with detail server-side and never echoed to the client.
func abortWithEncoding(c *gin.Context, code int, resp errorResponse, errors ...error) {
	for _, err := range errors {
		log.WithError(err).WithFields(logrus.Fields{
			"code":   resp.Code,
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request aborted")
	}

	resp.Message = localizedMessage(c, resp.messageID)
	c.AbortWithStatusJSON(code, resp)
}

func localizedMessage(c *gin.Context, id string) string {
	localizer := utils.NewLocalizer(c.GetHeader("Accept-Language"))
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
