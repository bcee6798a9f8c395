package rpauth

import "context"

// RegisterInput 注册请求（校验已在服务层完成）
type RegisterInput struct {
	Role     string
	Name     string
	Email    string
	Phone    string
	Password string
}

// RegisterResult 注册结果
type RegisterResult struct {
	UserID   string
	Username string
	Token    string
}

// AuthGateway 认证网关接口（只定义，不实现）
// 实现在 infra/upstream 层，按角色解析上游基地址
type AuthGateway interface {
	// Register 注册账号
	Register(ctx context.Context, in *RegisterInput) (*RegisterResult, error)

	// SendEmailVerificationLink 发送邮箱验证链接
	SendEmailVerificationLink(ctx context.Context, role, email string) error

	// SendOTP 发送手机验证码
	SendOTP(ctx context.Context, role, phone string) error

	// VerifyOTP 校验手机验证码
	VerifyOTP(ctx context.Context, role, phone, code string) (bool, error)
}
