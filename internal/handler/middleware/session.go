package middleware

import (
	"log/slog"
	"net/http"

	"hotelcart/internal/handler/httperr"
	"hotelcart/internal/pkg/config"
	"hotelcart/internal/pkg/cookie"
	"hotelcart/internal/pkg/errs"
	"hotelcart/internal/pkg/sessiontoken"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "cart_session_id"

// SessionMiddleware binds each request to an anonymous cart session. A valid
// signed cookie carries the session ID forward; a missing, expired or
// tampered cookie silently gets a fresh session rather than an error. A
// guest with a dead cookie is simply a guest with an empty cart.
type SessionMiddleware struct {
	tokens     *sessiontoken.Service
	sessionCfg config.SessionConfig
}

func NewSessionMiddleware(tokens *sessiontoken.Service, cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		tokens:     tokens,
		sessionCfg: cfg.Session,
	}
}

func (m *SessionMiddleware) EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := cookie.GetSessionToken(c, m.sessionCfg); token != "" {
			sessionID, err := m.tokens.Validate(token)
			if err == nil {
				c.Set(ctxSessionIDKey, sessionID)
				c.Next()
				return
			}
			slog.Debug("replacing invalid session cookie", "error", err.Error())
		}

		sessionID := uuid.New()
		token, err := m.tokens.Issue(sessionID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError,
				errs.Wrap(err, "failed to issue session token"), "Internal server error", nil)
			return
		}

		cookie.SetSessionCookie(c, m.sessionCfg, token, m.sessionCfg.TokenTTL)
		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}
	sessionID, ok := value.(uuid.UUID)
	return sessionID, ok
}

// SetSessionID seeds the context directly; test hook for handler tests that
// bypass the cookie exchange.
func SetSessionID(c *gin.Context, sessionID uuid.UUID) {
	c.Set(ctxSessionIDKey, sessionID)
}
