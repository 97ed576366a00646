package app

import (
	"skill_assessment_backend/docs"
	"skill_assessment_backend/internal/config"
	"skill_assessment_backend/internal/middleware"
	"skill_assessment_backend/internal/model"
	"skill_assessment_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		a.registerReportRoutes(authGroup, c)
		a.registerQuizRoutes(authGroup, c)
		a.registerCatalogRoutes(authGroup, c)

		users := authGroup.Group("/users", middleware.RoleMiddleware(model.RoleAdmin))
		{
			users.GET("", c.user.ListUsers)
			users.GET("/list", c.user.ListUsers)
		}
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

// 报告接口：本人或管理员，对比分析仅管理员
func (a *App) registerReportRoutes(rg *gin.RouterGroup, c *controllers) {
	reports := rg.Group("/reports")
	{
		reports.GET("/user/:userId", c.report.GetUserReport)
		reports.GET("/skill-gaps/:userId", c.report.GetSkillGaps)
		reports.GET("/session/:sessionId", c.report.GetSessionReport)
		reports.GET("/comparative/:userId", middleware.RoleMiddleware(model.RoleAdmin), c.report.GetComparativeReport)
	}
}

func (a *App) registerQuizRoutes(rg *gin.RouterGroup, c *controllers) {
	quizzes := rg.Group("/quizzes")
	{
		quizzes.POST("/start/:skillId", c.quiz.StartSession)
		quizzes.POST("/submit/:sessionId/:questionId", c.quiz.SubmitAnswer)
		quizzes.POST("/end/:sessionId", c.quiz.CompleteSession)
		quizzes.GET("/history", c.quiz.GetQuizHistory)
	}
}

// 技能与题目：登录用户可读，增删改仅管理员
func (a *App) registerCatalogRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := middleware.RoleMiddleware(model.RoleAdmin)

	skills := rg.Group("/skills")
	{
		skills.GET("", c.skill.ListSkills)
		skills.GET("/:skillId", c.skill.GetSkill)
		skills.POST("", admin, c.skill.CreateSkill)
		skills.PUT("/:skillId", admin, c.skill.UpdateSkill)
		skills.DELETE("/:skillId", admin, c.skill.DeleteSkill)
	}

	questions := rg.Group("/questions")
	{
		questions.GET("", c.question.ListQuestions)
		questions.POST("", admin, c.question.CreateQuestion)
		questions.PUT("/:questionId", admin, c.question.UpdateQuestion)
		questions.DELETE("/:questionId", admin, c.question.DeleteQuestion)
	}
}
