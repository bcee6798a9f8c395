package auth

import (
	"github.com/gin-gonic/gin"

	"threadly/console/internal/app/domains/apimodel/request"
	"threadly/console/internal/app/domains/apimodel/response"
	"threadly/console/internal/app/domains/services/svauth"
	"threadly/console/internal/app/pkg/ginx"
)

// AuthHandler 认证 HTTP 处理器
type AuthHandler struct {
	authService *svauth.AuthService
}

// NewAuthHandler 创建认证处理器实例
func NewAuthHandler(authService *svauth.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register 注册接口，本地校验失败不发起上游请求
// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	sessionID, sess, err := h.authService.Register(c.Request.Context(), req.ToRegisterInput())
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromSession(sessionID, sess))
}

// SendEmailVerificationLink 发送邮箱验证链接接口
// POST /api/send-email-verification-link
func (h *AuthHandler) SendEmailVerificationLink(c *gin.Context) {
	var req request.SendEmailLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	if err := h.authService.SendEmailVerificationLink(c.Request.Context(), req.Role, req.Email); err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, nil)
}

// SendOTP 发送短信验证码接口
// POST /api/send-otp
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req request.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	if err := h.authService.SendOTP(c.Request.Context(), req.Role, req.Phone); err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, nil)
}

// VerifyOTP 校验短信验证码接口
// POST /api/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req request.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	sessionID := sessionIDFrom(c)
	ok, err := h.authService.VerifyOTP(c.Request.Context(), sessionID, req.Role, req.Phone, req.Code)
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, gin.H{"verified": ok})
}

func sessionIDFrom(c *gin.Context) string {
	s, _ := c.Request.Context().Value("session_id").(string)
	return s
}
