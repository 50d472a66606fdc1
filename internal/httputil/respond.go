// Package httputil provides shared HTTP response helpers.
package httputil

import "github.com/gin-gonic/gin"

// RespondError writes a standardized JSON error envelope and aborts the
// request. The envelope carries the human-readable message under "error", a
// stable machine code under "code" and, when the request ID middleware ran,
// the request ID.
func RespondError(c *gin.Context, status int, code, message string) {
	var requestID string
	if rid, exists := c.Get("request_id"); exists {
		if s, ok := rid.(string); ok {
			requestID = s
		}
	}

	resp := map[string]string{
		"error": message,
		"code":  code,
	}

	if requestID != "" {
		resp["request_id"] = requestID
	}

	c.AbortWithStatusJSON(status, resp)
}
