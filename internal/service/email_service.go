package service

import (
	"errors"

	"Tech_Circulo/internal/pkg"
	"Tech_Circulo/internal/repository/redis"
)

// 验证码用途
const (
	ScopeRegister = "register"
	ScopeReset    = "reset"
)

var scopeSubjects = map[string]string{
	ScopeRegister: "注册验证",
	ScopeReset:    "重置密码",
}

type EmailService struct {
	emailCfg pkg.SMTPConfig
	rds      *redis.EmailRepository
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{emailCfg: cfg, rds: &redis.EmailRepository{}}
}

// SendCode 发送验证码：先写 pending 键，邮件发出后原子转为 confirmed。
// 发送失败时清掉 pending，不让用户拿着收不到的码走校验
func (s *EmailService) SendCode(scope, email string) error {
	subject, ok := scopeSubjects[scope]
	if !ok {
		return errors.New("unknown scope")
	}

	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}

	if err = s.rds.SetCodePending(scope, email, code); err != nil {
		return err
	}

	html := pkg.EmailCodeHTML(subject, code, redis.DefaultEmailCodeTTL)
	if err = pkg.SendEmail(s.emailCfg, email, subject+"验证码", html); err != nil {
		_ = s.rds.DeleteCodePending(scope, email)
		return err
	}

	if err = s.rds.ConfirmCode(scope, email); err != nil {
		_ = s.rds.DeleteCodePending(scope, email)
		return err
	}
	return nil
}

// VerifyCode 校验验证码，通过后一次性删除
func (s *EmailService) VerifyCode(scope, email, code string) (bool, error) {
	val, err := s.rds.GetCode(scope, email)
	if err != nil {
		// 不存在或已过期
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err = s.rds.DeleteCode(scope, email); err != nil {
		return false, err
	}
	return true, nil
}
