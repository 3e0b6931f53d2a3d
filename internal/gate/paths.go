package gate

import "strings"

// PathClass is the gate's classification of an incoming request. It is
// derived per request from the static path tables below and never stored.
type PathClass int

const (
	// ClassProtected is the default: everything not matched below.
	ClassProtected PathClass = iota
	// ClassPublic pages pass through regardless of session state.
	ClassPublic
	// ClassAuthPage pages render login/signup; authenticated users are
	// bounced back to the home page.
	ClassAuthPage
	// ClassAuthAPI endpoints bypass the gate entirely.
	ClassAuthAPI
)

var (
	publicPages  = []string{"/", "/docs"}
	authPages    = []string{"/login", "/signup"}
	authAPIPages = []string{"/api/login", "/api/signup"}
)

// Classify resolves the gate branch for a request. Auth-API endpoints win
// and match on the route path; the remaining classes match against the
// original URL, first match wins, and anything left is protected.
func Classify(path, originalURL string) PathClass {
	if isAuthAPI(path) {
		return ClassAuthAPI
	}
	if isPublicPage(originalURL) {
		return ClassPublic
	}
	if isAuthPage(originalURL) {
		return ClassAuthPage
	}
	return ClassProtected
}

func isAuthAPI(path string) bool {
	for _, page := range authAPIPages {
		if path == page || strings.HasPrefix(path, page) {
			return true
		}
	}
	return false
}

// isPublicPage matches exact pages plus their subtrees, so "/" stays
// exact while "/docs" also covers "/docs/anything".
func isPublicPage(url string) bool {
	for _, page := range publicPages {
		if url == page || strings.HasPrefix(url, page+"/") {
			return true
		}
	}
	return false
}

func isAuthPage(url string) bool {
	for _, page := range authPages {
		if strings.HasPrefix(url, page) {
			return true
		}
	}
	return false
}
