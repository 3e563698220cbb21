package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quizapp_backend/internal/middleware"
	"quizapp_backend/internal/model"
	"quizapp_backend/internal/repository"
	"quizapp_backend/internal/service"
	"quizapp_backend/pkg/database"
	"quizapp_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestRouter wires the real controllers and middleware onto an in-memory
// database, mirroring the server's route layout.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	quizRepo := repository.NewQuizRepository(db)

	authSvc := service.NewAuthService(userRepo)
	sessionSvc := service.NewSessionService(repository.NewSessionRepository(db), userRepo, nil, time.Hour)
	quizSvc := service.NewQuizService(quizRepo)
	responseSvc := service.NewResponseService(repository.NewResponseRepository(db), quizRepo, userRepo)

	auth := NewAuthController(authSvc, sessionSvc)
	quiz := NewQuizController(quizSvc, responseSvc)
	response := NewResponseController(responseSvc)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/register", auth.Register)
	api.POST("/login", auth.Login)

	public := router.Group("/api/public")
	public.GET("/quizzes", quiz.ListQuizzes)
	public.GET("/quizzes/:id/questions", quiz.ListQuestions)
	public.POST("/quizzes/:id/responses", response.SubmitPublic)

	authed := router.Group("/api")
	authed.Use(middleware.AuthMiddleware(sessionSvc))
	authed.POST("/logout", auth.Logout)
	authed.GET("/profile", auth.GetProfile)
	authed.GET("/quizzes", quiz.ListQuizzes)
	authed.GET("/quizzes/:id/questions", quiz.ListQuestions)

	respondent := authed.Group("/")
	respondent.Use(middleware.RoleMiddleware(model.Respondent))
	respondent.POST("/quizzes/:id/responses", response.Submit)

	author := authed.Group("/")
	author.Use(middleware.RoleMiddleware(model.Author))
	author.POST("/quizzes", quiz.CreateQuiz)
	author.GET("/quizzes/:id/respondents", response.ListRespondents)
	author.GET("/quizzes/:id/responses/:ref", response.ListResponses)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, router *gin.Engine, username, role string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/register", "", gin.H{
		"name":     username,
		"username": username,
		"password": "password-123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"username": username,
		"password": "password-123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)
	return body.Data.Token
}

func TestRegisterLoginAndProfile(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "author1", "author")

	w := doJSON(t, router, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"author1"`)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)
	registerAndLogin(t, router, "author1", "author")

	w := doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"username": "author1",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"username": "ghost",
		"password": "password-123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDuplicateRegistrationConflicts(t *testing.T) {
	router := newTestRouter(t)
	registerAndLogin(t, router, "author1", "author")

	w := doJSON(t, router, http.MethodPost, "/api/register", "", gin.H{
		"name":     "Someone Else",
		"username": "author1",
		"password": "password-456",
		"role":     "respondent",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "author1", "author")

	w := doJSON(t, router, http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestQuizLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	authorToken := registerAndLogin(t, router, "author1", "author")
	respondentToken := registerAndLogin(t, router, "student1", "respondent")

	// Respondents cannot author quizzes.
	w := doJSON(t, router, http.MethodPost, "/api/quizzes", respondentToken, gin.H{
		"title":     "Trivia",
		"questions": []gin.H{{"text": "Q1", "type": "short_answer"}},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/quizzes", authorToken, gin.H{
		"title": "Trivia",
		"questions": []gin.H{
			{"text": "Q1", "type": "multiple_choice", "options": []string{"A", "B"}},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	quizID := created.Data.ID
	require.NotZero(t, quizID)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/quizzes/%d/questions", quizID), respondentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"options":["A","B"]`)

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/quizzes/%d/responses", quizID), respondentToken, gin.H{
		"answers": []string{"A"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/quizzes/%d/respondents", quizID), authorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "student1")

	// The respondent ref for authenticated submissions is the user id.
	var respondents struct {
		Data []model.RespondentInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respondents))
	require.Len(t, respondents.Data, 1)

	w = doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/quizzes/%d/responses/%s", quizID, respondents.Data[0].Ref), authorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"found":true`)
	assert.Contains(t, w.Body.String(), `"answer":"A"`)

	// A respondent who never submitted yields the empty sentinel, not an
	// error.
	w = doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/quizzes/%d/responses/unknown", quizID), authorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"found":false`)
}

func TestAnonymousVariant(t *testing.T) {
	router := newTestRouter(t)
	authorToken := registerAndLogin(t, router, "author1", "author")

	w := doJSON(t, router, http.MethodPost, "/api/quizzes", authorToken, gin.H{
		"title":     "Open Quiz",
		"questions": []gin.H{{"text": "Q1", "type": "true_false"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// No token anywhere in the anonymous flow.
	w = doJSON(t, router, http.MethodGet, "/api/public/quizzes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Open Quiz")

	w = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/public/quizzes/%d/responses", created.Data.ID), "", gin.H{
			"participant": "walk-in guest",
			"answers":     []string{"True"},
		})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/quizzes/%d/respondents", created.Data.ID), authorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "walk-in guest")

	// Blank participant names are rejected.
	w = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/public/quizzes/%d/responses", created.Data.ID), "", gin.H{
			"participant": "   ",
			"answers":     []string{"True"},
		})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMissingTokenUnauthorized(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/profile", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
