package upstream

import (
	"context"
	"net/http"

	"threadly/console/internal/app/domains/repo/rpauth"
)

// AuthAPI 认证网关适配器，实现 rpauth.AuthGateway
// 注册/验证码接口按角色解析上游基地址
type AuthAPI struct {
	c *Client
}

var _ rpauth.AuthGateway = (*AuthAPI)(nil)

// NewAuthAPI 创建认证网关适配器
func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

// Register 注册账号
func (a *AuthAPI) Register(ctx context.Context, in *rpauth.RegisterInput) (*rpauth.RegisterResult, error) {
	body := map[string]string{
		"role":     in.Role,
		"name":     in.Name,
		"email":    in.Email,
		"phone":    in.Phone,
		"password": in.Password,
	}

	var resp struct {
		UserID   string `json:"user_id"`
		Username string `json:"username"`
		Token    string `json:"token"`
	}
	if err := a.c.doJSON(ctx, in.Role, http.MethodPost, "/api/register", body, &resp); err != nil {
		return nil, err
	}

	return &rpauth.RegisterResult{
		UserID:   resp.UserID,
		Username: resp.Username,
		Token:    resp.Token,
	}, nil
}

// SendEmailVerificationLink 发送邮箱验证链接
func (a *AuthAPI) SendEmailVerificationLink(ctx context.Context, role, email string) error {
	body := map[string]string{"email": email}
	return a.c.doJSON(ctx, role, http.MethodPost, "/api/send-email-verification-link", body, nil)
}

// SendOTP 发送手机验证码
func (a *AuthAPI) SendOTP(ctx context.Context, role, phone string) error {
	body := map[string]string{"phone": phone}
	return a.c.doJSON(ctx, role, http.MethodPost, "/api/send-otp", body, nil)
}

// VerifyOTP 校验手机验证码
func (a *AuthAPI) VerifyOTP(ctx context.Context, role, phone, code string) (bool, error) {
	body := map[string]string{"phone": phone, "otp": code}

	var resp struct {
		Verified bool `json:"verified"`
	}
	if err := a.c.doJSON(ctx, role, http.MethodPost, "/api/verify-otp", body, &resp); err != nil {
		return false, err
	}
	return resp.Verified, nil
}
