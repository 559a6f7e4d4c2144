package constants

// Cookie names used in the application
const (
	// CookieSession holds the opaque session id (HttpOnly)
	CookieSession = "sid"

	// Cookie paths
	CookiePathRoot = "/" // Root path for cookies available throughout the site
)
