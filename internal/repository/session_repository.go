package repository

import (
	"quizapp_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.Session) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindByToken(token string) (*model.Session, error) {
	var session model.Session
	err := r.DB.Where("token = ?", token).First(&session).Error
	return &session, err
}

// Delete is idempotent: removing an unknown token is not an error.
func (r *SessionRepository) Delete(token string) error {
	return r.DB.Where("token = ?", token).Delete(&model.Session{}).Error
}
