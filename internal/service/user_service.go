package service

import (
	"errors"

	"yatube/internal/model"
	"yatube/internal/pkg"
	"yatube/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SessionStore 登录态写入/注销的最小接口
type SessionStore interface {
	Add(userID uint64, token string) error
	Delete(userID uint64) error
}

// CodeVerifier 注册验证码校验
type CodeVerifier interface {
	VerifyCode(scope, email, code string) (bool, error)
}

type UserService struct {
	users    *mysql.UserRepository
	sessions SessionStore
	codes    CodeVerifier
}

func NewUserService(db *gorm.DB, sessions SessionStore, codes CodeVerifier) *UserService {
	return &UserService{
		users:    &mysql.UserRepository{DB: db},
		sessions: sessions,
		codes:    codes,
	}
}

func (s *UserService) Register(username, password, email, code string) error {
	ok, err := s.codes.VerifyCode("register", email, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBadCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: username,
		Password: string(hash),
		Email:    email,
	}
	return s.users.Create(user)
}

func (s *UserService) Login(login, password string) (*pkg.Pair, error) {
	user, err := s.users.FindByLogin(login)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errors.New("invalid password")
	}

	token, err := pkg.GeneratePair(user.ID)
	if err != nil {
		return nil, err
	}
	// 登录态写入存储，顶掉同账号的旧 token
	if err = s.sessions.Add(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *UserService) Logout(userID uint64) error {
	return s.sessions.Delete(userID)
}

// Refresh 换发新 token 对，同时覆盖登录态，否则新 access token 过不了门卫
func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	pair, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	claims, err := pkg.ParseAccess(pair.AccessToken)
	if err != nil {
		return nil, err
	}
	if err = s.sessions.Add(claims.UserID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

// FindByUsername 个人主页等只读场景
func (s *UserService) FindByUsername(username string) (*model.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
