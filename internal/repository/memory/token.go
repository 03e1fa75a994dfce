package memory

import (
	"sync"

	"yatube/internal/repository/redis"
)

// TokenStore 登录态 token 存储的内存实现
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[uint64]string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[uint64]string)}
}

func (s *TokenStore) Add(userID uint64, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[userID] = token
	return nil
}

func (s *TokenStore) Get(userID uint64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[userID]
	if !ok {
		return "", redis.ErrTokenNotFound
	}
	return token, nil
}

func (s *TokenStore) Extend(userID uint64) error {
	return nil
}

func (s *TokenStore) Delete(userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, userID)
	return nil
}
