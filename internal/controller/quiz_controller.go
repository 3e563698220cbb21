package controller

import (
	"errors"
	"strconv"

	"quizapp_backend/internal/middleware"
	"quizapp_backend/internal/service"
	"quizapp_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService     *service.QuizService
	ResponseService *service.ResponseService
}

func NewQuizController(quizService *service.QuizService, responseService *service.ResponseService) *QuizController {
	return &QuizController{
		QuizService:     quizService,
		ResponseService: responseService,
	}
}

// swagger:model CreateQuizRequest
type CreateQuizRequest struct {
	Title     string                  `json:"title" binding:"required"`
	Questions []service.QuestionInput `json:"questions" binding:"required"`
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Saves a quiz with its questions in authoring order; blank
// @Description questions are skipped
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateQuizRequest true "quiz definition"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := middleware.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quizID, err := c.QuizService.Create(user.ID, req.Title, req.Questions)
	if err != nil {
		if errors.Is(err, util.ErrInvalidQuiz) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": quizID})
}

// ListQuizzes godoc
// @Summary List quizzes
// @Description Quizzes in creation order
// @Tags quizzes
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.ResponseService.ListQuizzes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// ListQuestions godoc
// @Summary List a quiz's questions
// @Description Questions in authoring order with decoded option lists
// @Tags quizzes
// @Produce json
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Failure 400 {object} util.Response
// @Router /api/quizzes/{id}/questions [get]
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	quizID := parseQuizID(ctx)

	questions, err := c.ResponseService.ListQuestions(quizID)
	if err != nil {
		if errors.Is(err, util.ErrNoQuizSelected) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, questions)
}

// parseQuizID reads the :id path param; 0 means no quiz was selected and the
// services reject it.
func parseQuizID(ctx *gin.Context) uint {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
