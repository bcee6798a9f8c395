package request

// RegisterRequest 注册请求
type RegisterRequest struct {
	Role            string `json:"role" binding:"required" example:"vendor"`
	Name            string `json:"name" binding:"required" example:"Arun Sharma"`
	Email           string `json:"email" binding:"required" example:"arun@example.com"`
	Phone           string `json:"phone" binding:"required" example:"9876543210"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// SendEmailLinkRequest 发送邮箱验证链接请求
type SendEmailLinkRequest struct {
	Role  string `json:"role" binding:"required" example:"vendor"`
	Email string `json:"email" binding:"required,email" example:"arun@example.com"`
}

// SendOTPRequest 发送短信验证码请求
type SendOTPRequest struct {
	Role  string `json:"role" binding:"required" example:"rider"`
	Phone string `json:"phone" binding:"required" example:"9876543210"`
}

// VerifyOTPRequest 校验短信验证码请求
type VerifyOTPRequest struct {
	Role  string `json:"role" binding:"required" example:"rider"`
	Phone string `json:"phone" binding:"required" example:"9876543210"`
	Code  string `json:"code" binding:"required" example:"123456"`
}
