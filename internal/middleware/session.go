package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"practice-service/config"
	"practice-service/internal/constants"
	"practice-service/internal/dto"
	"practice-service/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session resolves the caller's session id from the signed cookie, minting a
// new id when the cookie is missing, expired or forged. The cookie is
// reissued once less than half of its lifetime remains.
func Session(cfg *config.SessionConfig, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID string
		reissue := true

		if token, err := c.Cookie(cfg.CookieName); err == nil && token != "" {
			claims, err := jwt.ValidateSessionToken(token, cfg.SecretKey)
			if err != nil {
				logger.Debug("session cookie rejected", "error", err)
			} else {
				sessionID = claims.SessionID
				reissue = claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) < cfg.TTL/2
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		if reissue {
			token, err := jwt.GenerateSessionToken(sessionID, cfg.SecretKey, cfg.TTL)
			if err != nil {
				logger.Error("failed to issue session cookie", "error", err)
				dto.JsonError(c, http.StatusInternalServerError)
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.CookieName, token, int(cfg.TTL/time.Second), "/", "", cfg.Secure, true)
		}

		c.Set(constants.SessionContextKey, sessionID)
		c.Next()
	}
}
