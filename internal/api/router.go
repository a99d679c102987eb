package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/disiplinli/kocumnet-back/docs"
	"github.com/disiplinli/kocumnet-back/internal/auth"
	"github.com/disiplinli/kocumnet-back/internal/config"
	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/email"
)

var uploadDir string

// @title           KoçumNet API
// @version         1.0
// @description     Backend for the Disiplinli/KoçumNet coaching platform.
// @host            localhost:8000
// @BasePath        /

// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
func SetupRouter(cfg *config.Config) *gin.Engine {
	uploadDir = cfg.UploadDir
	sender := email.New(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		if err := db.PingDB(); err != nil {
			c.JSON(500, gin.H{"status": "db_ping_error"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")

	// Public auth routes
	api.POST("/register/", auth.RegisterHandler(cfg, sender))
	api.POST("/login/", auth.LoginHandler(cfg))
	api.POST("/send-otp/", auth.SendOTPHandler(sender))
	api.POST("/verify-otp/", auth.VerifyOTPHandler(cfg))
	api.POST("/verify-email/", auth.VerifyEmailHandler())
	api.POST("/resend-verification/", auth.ResendVerificationHandler(sender))
	api.POST("/forgot-password/", auth.ForgotPasswordHandler(sender))
	api.POST("/reset-password/", auth.ResetPasswordHandler())
	api.POST("/logout/", auth.LogoutHandler(cfg))

	// Protected
	authed := api.Group("")
	authed.Use(auth.AuthMiddleware(cfg))
	{
		authed.GET("/dashboard/", GetDashboard)

		authed.GET("/student/plan/", GetPlan)
		authed.POST("/student/plan/add/", AddPlanTask)
		authed.PUT("/student/plan/minimum/", UpdateMinimum)
		authed.PUT("/student/plan/:id/", UpdatePlanTask)
		authed.DELETE("/student/plan/:id/delete/", DeletePlanTask)

		authed.GET("/student/today/", GetToday)
		authed.POST("/student/today/complete/", CompleteTask)
		authed.POST("/student/checkin/", SubmitCheckIn)

		authed.GET("/assignments/", GetAssignments)
		authed.POST("/assignments/create/", CreateAssignment)
		authed.POST("/assignments/:id/complete/", CompleteAssignment)
		authed.DELETE("/assignments/:id/delete/", DeleteAssignment)

		authed.GET("/exams/", GetExams)
		authed.POST("/exams/add/", AddExam)
		authed.GET("/exams/export/", ExportExams)
		authed.POST("/subject-results/add/", AddSubjectResult)
		authed.GET("/exam-averages/", GetExamAverages)
		authed.POST("/calculate-score/", CalculateScore)

		authed.GET("/chat/conversations/", GetConversations)
		authed.GET("/chat/messages/:userId/", GetMessages)
		authed.POST("/chat/send/", SendMessage)

		authed.GET("/questions/", GetQuestions)
		authed.POST("/questions/", CreateQuestion)
		authed.GET("/questions/spin/", SpinWheel)
		authed.POST("/questions/:id/feedback/", QuestionFeedback)
		authed.DELETE("/questions/:id/delete/", DeleteQuestion)

		authed.GET("/stuck/", GetStuckQuestions)
		authed.POST("/stuck/", CreateStuckQuestion)
		authed.GET("/stuck/:id/", GetStuckQuestion)
		authed.PUT("/stuck/:id/", UpdateStuckQuestion)
		authed.DELETE("/stuck/:id/", DeleteStuckQuestion)

		authed.GET("/lessons/", GetLessons)
		authed.PUT("/lessons/:id/update/", UpdateLesson)
		authed.POST("/lessons/:id/complete/", CompleteLesson)
		authed.POST("/lessons/:id/cancel/", CancelLesson)
		authed.DELETE("/lessons/:id/delete/", DeleteLesson)

		authed.GET("/topics/", GetTopics)
		authed.POST("/topics/toggle/", ToggleTopic)

		authed.GET("/schedule/", GetSchedule)
		authed.POST("/schedule/add/", AddScheduleEntry)
		authed.DELETE("/schedule/:id/delete/", DeleteScheduleEntry)
	}

	// Coach-only
	coach := api.Group("")
	coach.Use(auth.AuthMiddleware(cfg), auth.RequireCoach())
	{
		coach.GET("/coach/today/", GetCoachToday)
		coach.POST("/lessons/create/", CreateLesson)
	}

	return r
}
