package controller

import (
	"errors"
	"strconv"

	"quizapp_backend/internal/middleware"
	"quizapp_backend/internal/service"
	"quizapp_backend/internal/util"
	"quizapp_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ResponseController struct {
	ResponseService *service.ResponseService
}

func NewResponseController(responseService *service.ResponseService) *ResponseController {
	return &ResponseController{ResponseService: responseService}
}

// swagger:model SubmitResponseRequest
type SubmitResponseRequest struct {
	Answers []string `json:"answers" binding:"required"`
}

// swagger:model SubmitPublicResponseRequest
type SubmitPublicResponseRequest struct {
	Participant string   `json:"participant" binding:"required"`
	Answers     []string `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Records the session user's ordered answers; submitting again
// @Description appends a second response
// @Tags responses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz id"
// @Param body body SubmitResponseRequest true "ordered answers"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/quizzes/{id}/responses [post]
func (c *ResponseController) Submit(ctx *gin.Context) {
	var req SubmitResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := middleware.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	ref := strconv.FormatUint(uint64(user.ID), 10)
	id, err := c.ResponseService.Submit(parseQuizID(ctx), ref, req.Answers)
	if err != nil {
		c.submitError(ctx, err)
		return
	}

	monitoring.SubmissionCounter.WithLabelValues("authenticated").Inc()
	util.Created(ctx, gin.H{"id": id})
}

// SubmitPublic godoc
// @Summary Submit quiz answers anonymously
// @Description Deployment variant without authentication: the respondent is
// @Description a free-text participant name
// @Tags responses
// @Accept json
// @Produce json
// @Param id path int true "quiz id"
// @Param body body SubmitPublicResponseRequest true "participant and answers"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/public/quizzes/{id}/responses [post]
func (c *ResponseController) SubmitPublic(ctx *gin.Context) {
	var req SubmitPublicResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id, err := c.ResponseService.Submit(parseQuizID(ctx), req.Participant, req.Answers)
	if err != nil {
		c.submitError(ctx, err)
		return
	}

	monitoring.SubmissionCounter.WithLabelValues("anonymous").Inc()
	util.Created(ctx, gin.H{"id": id})
}

// ListRespondents godoc
// @Summary List respondents for a quiz
// @Tags responses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response{data=[]model.RespondentInfo}
// @Router /api/quizzes/{id}/respondents [get]
func (c *ResponseController) ListRespondents(ctx *gin.Context) {
	infos, err := c.ResponseService.ListRespondents(parseQuizID(ctx))
	if err != nil {
		if errors.Is(err, util.ErrNoQuizSelected) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, infos)
}

// ListResponses godoc
// @Summary Review one respondent's answers
// @Description Pairs answers with questions positionally; a missing response
// @Description row answers found=false, not an error
// @Tags responses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz id"
// @Param ref path string true "respondent ref"
// @Success 200 {object} util.Response{data=object}
// @Router /api/quizzes/{id}/responses/{ref} [get]
func (c *ResponseController) ListResponses(ctx *gin.Context) {
	pairs, err := c.ResponseService.ListResponses(parseQuizID(ctx), ctx.Param("ref"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoResponses):
			util.Success(ctx, gin.H{"found": false, "responses": []interface{}{}})
		case errors.Is(err, util.ErrNoQuizSelected):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"found": true, "responses": pairs})
}

func (c *ResponseController) submitError(ctx *gin.Context, err error) {
	if errors.Is(err, util.ErrEmptyRespondent) || errors.Is(err, util.ErrNoQuizSelected) {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.LogInternalError(ctx, err)
}
