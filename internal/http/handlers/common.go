package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"navetteclub/internal/adminview"
	intconfig "navetteclub/internal/config"
	"navetteclub/internal/http/middleware"
	"navetteclub/internal/konnect"
	"navetteclub/internal/mail"
	"navetteclub/internal/maps"
)

// Package-level wiring set once at startup. Handlers build repositories and
// services per request on top of the shared DB singleton.
var (
	env           intconfig.Env
	jwtSecret     []byte
	gateway       *konnect.Client
	distanceAPI   *maps.Client
	viewTracker   adminview.Tracker
	mailerBase    mail.Mailer
	adminPassword string
)

// Configure wires env-dependent dependencies. Call before mounting routes.
func Configure(e intconfig.Env, rdb *redis.Client) {
	env = e
	jwtSecret = []byte(e.JWTSecret)
	adminPassword = e.AdminPassword
	gateway = konnect.NewClient(e.KonnectAPIKey, e.KonnectReceiverWallet, e.KonnectBaseURL, e.BaseURL, e.EURToTNDRate)
	distanceAPI = maps.NewClient(e.GoogleMapsAPIKey)
	viewTracker = adminview.Tracker{RDB: rdb}
	mailerBase = mail.Mailer{
		Host:      e.SMTPHost,
		Port:      e.SMTPPort,
		Username:  e.SMTPUser,
		Password:  e.SMTPPass,
		FromEmail: e.FromEmail,
	}
}

func mailer(c *gin.Context) mail.Mailer {
	m := mailerBase
	m.RequestID = middleware.GetRequestID(c)
	return m
}

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "corps de requête vide", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload invalide", err)
		return false
	}
	return true
}

// pathID parses the :id route parameter, responding with 400 on garbage.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "identifiant invalide", err)
		return 0, false
	}
	return id, true
}
