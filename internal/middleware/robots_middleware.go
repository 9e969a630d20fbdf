package middleware

import "github.com/gin-gonic/gin"

const noIndexDirectives = "noindex, nofollow"

// NoIndexMiddleware guards /navbar and /api/v1. Those responses are pieces of
// a page, not pages, and must not show up in search results on their own.
// Full pages rendered by NoRoute stay indexable.
func NoIndexMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Robots-Tag", noIndexDirectives)
		c.Next()
	}
}
