package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quizapp_backend/internal/model"
	"quizapp_backend/internal/repository"
	"quizapp_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const sessionCachePrefix = "session:"

// SessionService issues, validates, and revokes opaque session tokens. The
// sessions table is the source of truth; Redis is a read-through cache of
// validated sessions and may be nil. Expiry is checked lazily on validation,
// expired rows are not deleted.
type SessionService struct {
	SessionRepo *repository.SessionRepository
	UserRepo    *repository.UserRepository
	Redis       *redis.Client
	TTL         time.Duration

	// Now is the clock; tests replace it.
	Now func() time.Time
}

func NewSessionService(sessionRepo *repository.SessionRepository, userRepo *repository.UserRepository, rdb *redis.Client, ttl time.Duration) *SessionService {
	return &SessionService{
		SessionRepo: sessionRepo,
		UserRepo:    userRepo,
		Redis:       rdb,
		TTL:         ttl,
		Now:         time.Now,
	}
}

// Issue binds a fresh random token to the user. Concurrent sessions for the
// same user are allowed.
func (s *SessionService) Issue(userID uint) (string, error) {
	session := &model.Session{
		Token:      uuid.New().String(),
		UserID:     userID,
		ExpiryTime: s.Now().Add(s.TTL),
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return "", err
	}
	return session.Token, nil
}

// Validate resolves a token to its user. The password hash never leaves this
// method.
func (s *SessionService) Validate(token string) (*model.User, error) {
	if user, ok := s.cacheGet(token); ok {
		return user, nil
	}

	session, err := s.SessionRepo.FindByToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTokenNotFound
	} else if err != nil {
		return nil, err
	}

	now := s.Now()
	if !session.ExpiryTime.After(now) {
		return nil, util.ErrSessionExpired
	}

	user, err := s.UserRepo.FindByID(session.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTokenNotFound
	} else if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	s.cacheSet(token, user, session.ExpiryTime.Sub(now))
	return user, nil
}

// Revoke deletes the token binding; revoking an unknown token is not an
// error.
func (s *SessionService) Revoke(token string) error {
	if err := s.SessionRepo.Delete(token); err != nil {
		return err
	}
	if s.Redis != nil {
		s.Redis.Del(context.Background(), sessionCachePrefix+token)
	}
	return nil
}

func (s *SessionService) cacheGet(token string) (*model.User, bool) {
	if s.Redis == nil {
		return nil, false
	}
	val, err := s.Redis.Get(context.Background(), sessionCachePrefix+token).Result()
	if err != nil {
		return nil, false
	}
	var user model.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil, false
	}
	return &user, true
}

func (s *SessionService) cacheSet(token string, user *model.User, ttl time.Duration) {
	if s.Redis == nil || ttl <= 0 {
		return
	}
	val, err := json.Marshal(user)
	if err != nil {
		return
	}
	s.Redis.Set(context.Background(), sessionCachePrefix+token, val, ttl)
}
