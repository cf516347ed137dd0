package cookie

import (
	"net/http"
	"strings"
	"time"

	"furnicraft/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

// SetAccessToken stores the session token in an HttpOnly cookie that lives as
// long as the token itself.
func SetAccessToken(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	ck := sessionCookie(cfg, accessToken)
	ck.MaxAge = int(expiry.Seconds())
	ck.Expires = time.Now().Add(expiry)
	http.SetCookie(c.Writer, ck)
}

// ClearAccessToken tells the browser to drop the session cookie.
func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	ck := sessionCookie(cfg, "")
	ck.MaxAge = -1
	ck.Expires = time.Unix(0, 0)
	http.SetCookie(c.Writer, ck)
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

func sessionCookie(cfg config.CookieConfig, value string) *http.Cookie {
	sameSite := sameSiteMode(cfg.SameSite)
	return &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    value,
		Path:     "/",
		Domain:   cfg.Domain,
		HttpOnly: true,
		// Browsers drop SameSite=None cookies that are not Secure.
		Secure:   cfg.Secure || sameSite == http.SameSiteNoneMode,
		SameSite: sameSite,
	}
}

func sameSiteMode(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
