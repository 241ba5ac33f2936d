package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nowshad-islam-dev/skipq-api/internal/config"
)

// AccessLog uses gin's default logger in development and an Apache
// combined-format line in production.
func AccessLog(cfg *config.Config) gin.HandlerFunc {
	if !cfg.IsProduction() {
		return gin.Logger()
	}
	return gin.LoggerWithFormatter(combinedFormat)
}

func combinedFormat(p gin.LogFormatterParams) string {
	return fmt.Sprintf("%s - - [%s] \"%s %s %s\" %d %d %q %q\n",
		p.ClientIP,
		p.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
		p.Method,
		p.Path,
		p.Request.Proto,
		p.StatusCode,
		p.BodySize,
		p.Request.Referer(),
		p.Request.UserAgent(),
	)
}

// BodyLimit caps request bodies at limit bytes.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
