package app

import (
	"quizapp_backend/docs"
	"quizapp_backend/internal/middleware"
	"quizapp_backend/internal/model"
	"quizapp_backend/internal/service"
	"quizapp_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerAuthenticatedRoutes(router, c, s.session)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// Anonymous deployment variant: quizzes are taken under a free-text
	// participant name, no session involved.
	publicAPI := router.Group("/api/public")
	{
		publicAPI.GET("/quizzes", c.quiz.ListQuizzes)
		publicAPI.GET("/quizzes/:id/questions", c.quiz.ListQuestions)
		publicAPI.POST("/quizzes/:id/responses", c.response.SubmitPublic)
	}
}

func (a *App) registerAuthenticatedRoutes(router *gin.Engine, c *controllers, sessions *service.SessionService) {
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(sessions))
	{
		authGroup.POST("/logout", c.auth.Logout)
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.GET("/quizzes", c.quiz.ListQuizzes)
		authGroup.GET("/quizzes/:id/questions", c.quiz.ListQuestions)

		// Respondents take quizzes under their user id.
		respondent := authGroup.Group("/")
		respondent.Use(middleware.RoleMiddleware(model.Respondent))
		{
			respondent.POST("/quizzes/:id/responses", c.response.Submit)
		}

		// Authors create quizzes and review what came back.
		author := authGroup.Group("/")
		author.Use(middleware.RoleMiddleware(model.Author))
		{
			author.POST("/quizzes", c.quiz.CreateQuiz)
			author.GET("/quizzes/:id/respondents", c.response.ListRespondents)
			author.GET("/quizzes/:id/responses/:ref", c.response.ListResponses)
		}
	}
}
