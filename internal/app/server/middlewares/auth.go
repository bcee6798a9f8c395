package middlewares

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"threadly/console/internal/app/infra/session"
	"threadly/console/internal/app/pkg/ginx"
)

// Auth 登录态中间件
// Authorization: Bearer <session_id>，会话数据存在 Redis，
// 校验通过后把 token/role/user_id/session_id 注入请求上下文供下游使用
func Auth(sessions *session.Store, allowedRoles ...string) gin.HandlerFunc {
	roleSet := make(map[string]bool, len(allowedRoles))
	for _, r := range allowedRoles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ginx.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}

		sessionID := strings.TrimPrefix(header, "Bearer ")
		sess, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			ginx.Unauthorized(c, "session expired or invalid")
			c.Abort()
			return
		}

		if len(roleSet) > 0 && !roleSet[sess.Role] {
			ginx.Unauthorized(c, "role not allowed")
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, "token", sess.Token)
		ctx = context.WithValue(ctx, "role", sess.Role)
		ctx = context.WithValue(ctx, "user_id", sess.UserID)
		ctx = context.WithValue(ctx, "session_id", sessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
