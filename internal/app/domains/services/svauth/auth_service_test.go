package svauth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadly/console/internal/app/domains/repo/rpauth"
	"threadly/console/internal/app/pkg/errorx"
	"threadly/console/internal/app/pkg/logger"
)

// fakeAuthGateway 计数型认证网关桩
type fakeAuthGateway struct {
	registerCalls int
	linkCalls     int
	otpCalls      int
	verifyCalls   int
	verifyResult  bool
}

func (f *fakeAuthGateway) Register(ctx context.Context, in *rpauth.RegisterInput) (*rpauth.RegisterResult, error) {
	f.registerCalls++
	return &rpauth.RegisterResult{UserID: "USR-1", Username: in.Name, Token: "tok"}, nil
}

func (f *fakeAuthGateway) SendEmailVerificationLink(ctx context.Context, role, email string) error {
	f.linkCalls++
	return nil
}

func (f *fakeAuthGateway) SendOTP(ctx context.Context, role, phone string) error {
	f.otpCalls++
	return nil
}

func (f *fakeAuthGateway) VerifyOTP(ctx context.Context, role, phone, code string) (bool, error) {
	f.verifyCalls++
	return f.verifyResult, nil
}

func newAuthService(t *testing.T, gw *fakeAuthGateway) *AuthService {
	log, err := logger.NewZapLogger("error")
	require.NoError(t, err)
	return NewAuthService(gw, nil, nil, "verification_status_changed", log)
}

func validInput() *RegisterInput {
	return &RegisterInput{
		Role:            "vendor",
		Name:            "Arun Sharma",
		Email:           "arun@example.com",
		Phone:           "9876543210",
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
	}
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"unknown role", func(in *RegisterInput) { in.Role = "moderator" }},
		{"blank name", func(in *RegisterInput) { in.Name = "   " }},
		{"malformed email", func(in *RegisterInput) { in.Email = "arun@exam ple" }},
		{"phone not ten digits", func(in *RegisterInput) { in.Phone = "12345" }},
		{"short password", func(in *RegisterInput) { in.Password = "short"; in.ConfirmPassword = "short" }},
		{"password mismatch", func(in *RegisterInput) { in.ConfirmPassword = "other-pass" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &fakeAuthGateway{}
			svc := newAuthService(t, gw)

			in := validInput()
			tc.mutate(in)

			_, _, err := svc.Register(context.Background(), in)
			require.Error(t, err)
			assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))
			assert.Zero(t, gw.registerCalls)
		})
	}
}

func TestSendEmailVerificationLink(t *testing.T) {
	gw := &fakeAuthGateway{}
	svc := newAuthService(t, gw)
	ctx := context.Background()

	err := svc.SendEmailVerificationLink(ctx, "vendor", "not-an-email")
	require.Error(t, err)
	assert.Zero(t, gw.linkCalls)

	require.NoError(t, svc.SendEmailVerificationLink(ctx, "vendor", "arun@example.com"))
	assert.Equal(t, 1, gw.linkCalls)
}

func TestSendOTP(t *testing.T) {
	gw := &fakeAuthGateway{}
	svc := newAuthService(t, gw)
	ctx := context.Background()

	err := svc.SendOTP(ctx, "rider", "98765")
	require.Error(t, err)
	assert.Zero(t, gw.otpCalls)

	require.NoError(t, svc.SendOTP(ctx, "rider", "9876543210"))
	assert.Equal(t, 1, gw.otpCalls)
}

func TestVerifyOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("empty code rejected before upstream", func(t *testing.T) {
		gw := &fakeAuthGateway{}
		svc := newAuthService(t, gw)

		_, err := svc.VerifyOTP(ctx, "", "rider", "9876543210", "")
		require.Error(t, err)
		assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))
		assert.Zero(t, gw.verifyCalls)
	})

	t.Run("wrong code comes back unverified", func(t *testing.T) {
		gw := &fakeAuthGateway{verifyResult: false}
		svc := newAuthService(t, gw)

		ok, err := svc.VerifyOTP(ctx, "", "rider", "9876543210", "000000")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 1, gw.verifyCalls)
	})

	t.Run("correct code verifies", func(t *testing.T) {
		gw := &fakeAuthGateway{verifyResult: true}
		svc := newAuthService(t, gw)

		ok, err := svc.VerifyOTP(ctx, "", "rider", "9876543210", "123456")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
