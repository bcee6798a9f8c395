package middlewares

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"threadly/console/internal/app/pkg/idgen"
	"threadly/console/internal/app/pkg/logger"
)

// Logger 请求日志中间件
// 为每个请求注入 trace_id，请求完成后记录耗时与状态码
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-ID")
		if traceID == "" {
			traceID = idgen.TraceID()
		}

		ctx := context.WithValue(c.Request.Context(), "trace_id", traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Trace-ID", traceID)

		start := time.Now()
		c.Next()

		log.Infof(c.Request.Context(), "%s %s status=%d cost=%v",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
