package repository

import (
	"quizapp_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// CreateWithQuestions inserts the quiz and its questions in one transaction,
// so the generated quiz id is read back on the same connection with no
// interleaving writer.
func (r *QuizRepository) CreateWithQuestions(quiz *model.Quiz, questions []model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuizID = quiz.ID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) List() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Order("id asc").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) ListQuestions(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("quiz_id = ?", quizID).Order("position asc").Find(&questions).Error
	return questions, err
}
