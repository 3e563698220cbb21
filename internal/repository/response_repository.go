package repository

import (
	"quizapp_backend/internal/model"

	"gorm.io/gorm"
)

type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

func (r *ResponseRepository) Create(response *model.Response) error {
	return r.DB.Create(response).Error
}

// FindByQuizAndRespondent returns the earliest response row for the pair.
// Duplicates are allowed by design; review reads the first submission.
func (r *ResponseRepository) FindByQuizAndRespondent(quizID uint, respondentRef string) (*model.Response, error) {
	var response model.Response
	err := r.DB.Where("quiz_id = ? AND respondent_ref = ?", quizID, respondentRef).
		Order("id asc").
		First(&response).Error
	return &response, err
}

func (r *ResponseRepository) ListRespondents(quizID uint) ([]string, error) {
	var refs []string
	err := r.DB.Model(&model.Response{}).
		Distinct("respondent_ref").
		Where("quiz_id = ?", quizID).
		Order("respondent_ref asc").
		Pluck("respondent_ref", &refs).Error
	return refs, err
}
