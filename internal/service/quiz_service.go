package service

import (
	"strings"

	"quizapp_backend/internal/model"
	"quizapp_backend/internal/repository"
	"quizapp_backend/internal/util"
)

// QuestionInput is one question as submitted by the author, in authoring
// order.
type QuestionInput struct {
	Text    string             `json:"text"`
	Type    model.QuestionType `json:"type" binding:"required"`
	Options []string           `json:"options"`
}

type QuizService struct {
	QuizRepo *repository.QuizRepository
}

func NewQuizService(quizRepo *repository.QuizRepository) *QuizService {
	return &QuizService{QuizRepo: quizRepo}
}

// Create validates and saves the quiz with its questions. Questions with
// blank text are skipped, matching how the authoring form always behaved;
// the quiz must still end up with at least one question. Quizzes are
// immutable once saved.
func (s *QuizService) Create(authorID uint, title string, questions []QuestionInput) (uint, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(questions) == 0 {
		return 0, util.ErrInvalidQuiz
	}

	rows := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		text := strings.TrimSpace(q.Text)
		if text == "" {
			continue // skip blank questions
		}

		options, err := optionsForType(q.Type, q.Options)
		if err != nil {
			return 0, err
		}

		rows = append(rows, model.Question{
			Position: len(rows),
			Text:     text,
			Type:     q.Type,
			Options:  options,
		})
	}

	if len(rows) == 0 {
		return 0, util.ErrInvalidQuiz
	}

	quiz := &model.Quiz{Title: title, AuthorID: authorID}
	if err := s.QuizRepo.CreateWithQuestions(quiz, rows); err != nil {
		return 0, err
	}
	return quiz.ID, nil
}

// optionsForType applies the per-type option rules: short answer stores
// none, true/false stores the fixed pair, multiple choice keeps the author's
// non-empty options and needs at least one.
func optionsForType(t model.QuestionType, supplied []string) (model.StringList, error) {
	switch t {
	case model.ShortAnswer:
		return model.StringList{}, nil
	case model.TrueFalse:
		return append(model.StringList{}, model.TrueFalseOptions...), nil
	case model.MultipleChoice:
		options := make(model.StringList, 0, len(supplied))
		for _, o := range supplied {
			if strings.TrimSpace(o) != "" {
				options = append(options, o)
			}
		}
		if len(options) == 0 {
			return nil, util.ErrInvalidQuiz
		}
		return options, nil
	default:
		return nil, util.ErrInvalidQuiz
	}
}
