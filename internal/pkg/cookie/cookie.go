package cookie

import (
	"net/http"
	"time"

	"hotelcart/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetSessionCookie(c *gin.Context, cfg config.SessionConfig, token string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		cfg.CookieName,
		token,
		int(expiry.Seconds()),
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true, // HttpOnly
	)
}

func ClearSessionCookie(c *gin.Context, cfg config.SessionConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		cfg.CookieName,
		"",
		-1,
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true,
	)
}

func GetSessionToken(c *gin.Context, cfg config.SessionConfig) string {
	token, _ := c.Cookie(cfg.CookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
