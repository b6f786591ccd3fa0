package httputil

import (
	"github.com/gin-gonic/gin"
)

// RequestHost returns the scheme and host to use when constructing
// links in API responses.
//
// The scheme defaults to http and is switched to https when the
// x-forwarded-proto header says so. When a reverse proxy sets
// x-forwarded-host, that host wins over the request host and the
// x-forwarded-prefix header is appended as path prefix.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost
		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
	}

	return scheme + "://" + host + forwardedPrefix
}
