package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// StateCookie binds one login attempt to its callback (anti-CSRF).
	StateCookie = "github_oauth_state"
	// SessionCookie carries the GitHub access token between requests. A
	// request with no session cookie is unauthenticated; there is no
	// partial-session state.
	SessionCookie = "github_auth_token"

	stateCookieMaxAge   = 10 * 60           // 10 minutes
	sessionCookieMaxAge = 7 * 24 * 60 * 60 // 7 days
)

// SetStateCookie stores the OAuth state token. Short-lived: long enough for
// the user to approve on GitHub, short enough to limit replay exposure.
func SetStateCookie(c *gin.Context, state string, secure bool) {
	setCookie(c, StateCookie, state, stateCookieMaxAge, secure)
}

// ClearStateCookie deletes the state cookie. The callback calls this
// unconditionally on first read: the token is single-use.
func ClearStateCookie(c *gin.Context, secure bool) {
	setCookie(c, StateCookie, "", -1, secure)
}

// SetSessionCookie stores the access token for 7 days.
func SetSessionCookie(c *gin.Context, token string, secure bool) {
	setCookie(c, SessionCookie, token, sessionCookieMaxAge, secure)
}

// ClearSessionCookie ends the session. Safe to call with no session present.
func ClearSessionCookie(c *gin.Context, secure bool) {
	setCookie(c, SessionCookie, "", -1, secure)
}

func setCookie(c *gin.Context, name, value string, maxAge int, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
