package middlewares

import (
	"github.com/gin-gonic/gin"

	"threadly/console/internal/app/pkg/ginx"
	"threadly/console/internal/app/pkg/logger"
)

// ErrorHandler 统一错误处理中间件
// 捕获 panic 并按统一响应结构返回，避免裸 500
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf(c.Request.Context(), "panic recovered: %v", r)
				ginx.InternalError(c, "internal server error")
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			ginx.FromError(c, c.Errors.Last().Err)
		}
	}
}
