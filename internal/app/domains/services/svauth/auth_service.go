package svauth

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"threadly/console/internal/app/domains/repo/rpauth"
	"threadly/console/internal/app/infra/notify"
	"threadly/console/internal/app/infra/session"
	"threadly/console/internal/app/pkg/errorx"
	"threadly/console/internal/app/pkg/logger"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// 已知角色集合，注册时按角色解析上游基地址
var knownRoles = map[string]bool{
	"admin":    true,
	"vendor":   true,
	"rider":    true,
	"customer": true,
}

// RegisterInput 注册输入
type RegisterInput struct {
	Role            string
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// AuthService 认证服务，负责注册/验证码流程编排
type AuthService struct {
	gateway       rpauth.AuthGateway
	sessions      *session.Store
	pubsub        *notify.PubSub
	notifyChannel string
	logger        logger.Logger
}

// NewAuthService 创建认证服务实例
func NewAuthService(gateway rpauth.AuthGateway, sessions *session.Store, pubsub *notify.PubSub, notifyChannel string, log logger.Logger) *AuthService {
	return &AuthService{
		gateway:       gateway,
		sessions:      sessions,
		pubsub:        pubsub,
		notifyChannel: notifyChannel,
		logger:        log,
	}
}

// Register 注册账号
// 客户端校验全部通过后才发起上游调用；成功后建立会话
func (s *AuthService) Register(ctx context.Context, in *RegisterInput) (string, *session.Session, error) {
	if err := s.validateRegister(in); err != nil {
		return "", nil, err
	}

	result, err := s.gateway.Register(ctx, &rpauth.RegisterInput{
		Role:     in.Role,
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Phone:    in.Phone,
		Password: in.Password,
	})
	if err != nil {
		return "", nil, err
	}

	sess := &session.Session{
		Token:    result.Token,
		UserID:   result.UserID,
		Username: result.Username,
		Role:     in.Role,
	}
	sessionID := uuid.New().String()
	if err := s.sessions.Save(ctx, sessionID, sess); err != nil {
		return "", nil, err
	}

	return sessionID, sess, nil
}

// validateRegister 注册前的客户端校验（失败时不发起任何网络调用）
func (s *AuthService) validateRegister(in *RegisterInput) error {
	if !knownRoles[in.Role] {
		return errorx.Validation("unknown role")
	}
	if strings.TrimSpace(in.Name) == "" {
		return errorx.Validation("name is required")
	}
	if !emailPattern.MatchString(in.Email) {
		return errorx.Validation("invalid email address")
	}
	if !phonePattern.MatchString(in.Phone) {
		return errorx.Validation("phone number must be 10 digits")
	}
	if len(in.Password) < 8 {
		return errorx.Validation("password must be at least 8 characters")
	}
	if in.Password != in.ConfirmPassword {
		return errorx.Validation("passwords do not match")
	}
	return nil
}

// SendEmailVerificationLink 发送邮箱验证链接
func (s *AuthService) SendEmailVerificationLink(ctx context.Context, role, email string) error {
	if !emailPattern.MatchString(email) {
		return errorx.Validation("invalid email address")
	}
	return s.gateway.SendEmailVerificationLink(ctx, role, email)
}

// SendOTP 发送手机验证码
func (s *AuthService) SendOTP(ctx context.Context, role, phone string) error {
	if !phonePattern.MatchString(phone) {
		return errorx.Validation("phone number must be 10 digits")
	}
	return s.gateway.SendOTP(ctx, role, phone)
}

// VerifyOTP 校验手机验证码
// 验证通过后写入会话标记，并向其他会话广播（等价于跨标签页的 storage 事件）
func (s *AuthService) VerifyOTP(ctx context.Context, sessionID, role, phone, code string) (bool, error) {
	if code == "" {
		return false, errorx.Validation("otp is required")
	}

	verified, err := s.gateway.VerifyOTP(ctx, role, phone, code)
	if err != nil {
		return false, err
	}
	if !verified {
		return false, nil
	}

	if sessionID != "" {
		if err := s.sessions.SetFlag(ctx, sessionID, "phone_verified", true); err != nil {
			s.logger.Warnf(ctx, "[Auth] set phone_verified flag failed: %v", err)
		}
	}
	if s.pubsub != nil {
		notice := &notify.VerificationNotice{
			UserID:    sessionID,
			Role:      role,
			Status:    "phone_verified",
			Timestamp: time.Now().Unix(),
		}
		if err := s.pubsub.PublishVerificationChanged(ctx, s.notifyChannel, notice); err != nil {
			s.logger.Warnf(ctx, "[Auth] publish verification notice failed: %v", err)
		}
	}

	return true, nil
}
