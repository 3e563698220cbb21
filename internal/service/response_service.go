package service

import (
	"errors"
	"strconv"
	"strings"

	"quizapp_backend/internal/model"
	"quizapp_backend/internal/repository"
	"quizapp_backend/internal/util"

	"gorm.io/gorm"
)

type ResponseService struct {
	ResponseRepo *repository.ResponseRepository
	QuizRepo     *repository.QuizRepository
	UserRepo     *repository.UserRepository
}

func NewResponseService(responseRepo *repository.ResponseRepository, quizRepo *repository.QuizRepository, userRepo *repository.UserRepository) *ResponseService {
	return &ResponseService{
		ResponseRepo: responseRepo,
		QuizRepo:     quizRepo,
		UserRepo:     userRepo,
	}
}

func (s *ResponseService) ListQuizzes() ([]model.Quiz, error) {
	return s.QuizRepo.List()
}

func (s *ResponseService) ListQuestions(quizID uint) ([]model.Question, error) {
	if quizID == 0 {
		return nil, util.ErrNoQuizSelected
	}
	return s.QuizRepo.ListQuestions(quizID)
}

// Submit records one respondent's ordered answers. Answer count and option
// membership are not checked against the quiz; review truncates positionally
// if they ever diverge. A second submission for the same pair appends a new
// row.
func (s *ResponseService) Submit(quizID uint, respondentRef string, answers []string) (uint, error) {
	respondentRef = strings.TrimSpace(respondentRef)
	if respondentRef == "" {
		return 0, util.ErrEmptyRespondent
	}
	if quizID == 0 {
		return 0, util.ErrNoQuizSelected
	}

	response := &model.Response{
		QuizID:        quizID,
		RespondentRef: respondentRef,
		Answers:       append(model.StringList{}, answers...),
	}
	if err := s.ResponseRepo.Create(response); err != nil {
		return 0, err
	}
	return response.ID, nil
}

// ListResponses pairs the respondent's answers with the quiz's questions in
// stored order, up to the shorter of the two lists. ErrNoResponses signals
// an empty result, not a failure.
func (s *ResponseService) ListResponses(quizID uint, respondentRef string) ([]model.QuestionAnswer, error) {
	if quizID == 0 {
		return nil, util.ErrNoQuizSelected
	}

	response, err := s.ResponseRepo.FindByQuizAndRespondent(quizID, respondentRef)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNoResponses
	} else if err != nil {
		return nil, err
	}

	questions, err := s.QuizRepo.ListQuestions(quizID)
	if err != nil {
		return nil, err
	}

	n := len(response.Answers)
	if len(questions) < n {
		n = len(questions)
	}

	pairs := make([]model.QuestionAnswer, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, model.QuestionAnswer{
			QuestionText: questions[i].Text,
			Answer:       response.Answers[i],
		})
	}
	return pairs, nil
}

// ListRespondents returns everyone with at least one response to the quiz.
// Refs that are user ids resolve to the user's display name.
func (s *ResponseService) ListRespondents(quizID uint) ([]model.RespondentInfo, error) {
	if quizID == 0 {
		return nil, util.ErrNoQuizSelected
	}

	refs, err := s.ResponseRepo.ListRespondents(quizID)
	if err != nil {
		return nil, err
	}

	infos := make([]model.RespondentInfo, 0, len(refs))
	for _, ref := range refs {
		info := model.RespondentInfo{Ref: ref, Name: ref}
		if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
			if user, err := s.UserRepo.FindByID(uint(id)); err == nil {
				info.Name = user.Name
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}
