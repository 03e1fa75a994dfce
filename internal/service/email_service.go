package service

import (
	"errors"

	"yatube/internal/pkg"
	"yatube/internal/repository/redis"
)

// CodeStore 验证码存储的最小接口
type CodeStore interface {
	SetCode(scope, email, code string) error
	GetCode(scope, email string) (string, error)
	DeleteCode(scope, email string) error
}

type EmailService struct {
	cfg   pkg.SMTPConfig
	codes CodeStore
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{
		cfg:   cfg,
		codes: &redis.EmailCodeRepository{},
	}
}

var scopeSubjects = map[string]string{
	"register": "注册账号",
}

// SendCode 生成 6 位验证码，落 redis 后发邮件
func (s *EmailService) SendCode(scope, email string) error {
	subject, ok := scopeSubjects[scope]
	if !ok {
		return errors.New("unknown scope")
	}

	code, err := pkg.NewVerifyCode()
	if err != nil {
		return err
	}
	if err := s.codes.SetCode(scope, email, code); err != nil {
		return err
	}
	body := pkg.EmailCodeHTML(subject, code, redis.DefaultEmailCodeTTL)
	return pkg.SendEmail(s.cfg, email, subject, body)
}

// VerifyCode 校验并销毁验证码，一次性使用
func (s *EmailService) VerifyCode(scope, email, code string) (bool, error) {
	stored, err := s.codes.GetCode(scope, email)
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, errors.New("code mismatch")
	}
	_ = s.codes.DeleteCode(scope, email)
	return true, nil
}
