package middleware

import (
	"compress/gzip"
	"compress/zlib"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest unwraps gzip or deflate encoded request bodies.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := strings.ToLower(strings.TrimSpace(c.GetHeader("Content-Encoding")))

		var (
			reader io.ReadCloser
			err    error
		)
		switch {
		case strings.Contains(encoding, "gzip"):
			reader, err = gzip.NewReader(c.Request.Body)
		case strings.Contains(encoding, "deflate"):
			reader, err = zlib.NewReader(c.Request.Body)
		default:
			c.Next()
			return
		}
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		original := c.Request.Body
		defer original.Close()
		defer reader.Close()

		c.Request.Body = reader
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
