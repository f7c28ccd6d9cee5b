package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReferrerRequired hides completion pages from direct navigation: they only
// make sense as the target of a redirect. Advisory, not a security check.
func ReferrerRequired(ctx *gin.Context) {
	if ctx.Request.Header.Get("Referer") == "" {
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
}
