package routes

import (
	"fitmarket/internal/adapter/http/handlers"
	"fitmarket/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders      = "/orders"
	PathWorkouts    = "/workouts"
	PathAssessments = "/assessments"
	PathStudents    = "/students"
	PathGyms        = "/gyms"
	PathAuth        = "/auth"
	PathAdmin       = "/admin"
	PathTracker     = "/tracker"
)

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/stats", h.OrderStats)
		orders.GET("/:id", h.GetOrder)
		orders.PATCH("/:id/confirm", h.ConfirmOrder)
		orders.PATCH("/:id/start", h.StartOrder)
		orders.PATCH("/:id/complete", h.CompleteOrder)
		orders.PATCH("/:id/cancel", h.CancelOrder)
		orders.PATCH("/:id/payment", h.UpdatePaymentStatus)
		orders.POST("/:id/payments", h.ChargeOrder)
		orders.POST("/:id/workouts", h.LinkWorkout)
		orders.POST("/:id/assessments", h.LinkAssessment)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, workouts *handlers.WorkoutHandler, assessments *handlers.AssessmentHandler, students *handlers.StudentHandler, gyms *handlers.GymHandler) {
	w := rg.Group(PathWorkouts)
	{
		w.POST("", workouts.CreateWorkout)
		w.GET("", workouts.ListWorkouts)
		w.GET("/:id", workouts.GetWorkout)
		w.PUT("/:id", workouts.UpdateWorkout)
		w.DELETE("/:id", workouts.DeleteWorkout)
		w.POST("/:id/assign", workouts.AssignWorkout)
	}

	a := rg.Group(PathAssessments)
	{
		a.POST("", assessments.CreateAssessment)
		a.GET("", assessments.ListAssessments)
		a.GET("/student/:studentId/history", assessments.StudentHistory)
		a.GET("/:id", assessments.GetAssessment)
		a.PUT("/:id", assessments.UpdateAssessment)
		a.DELETE("/:id", assessments.DeleteAssessment)
	}

	s := rg.Group(PathStudents)
	{
		s.POST("", students.CreateStudent)
		s.GET("", students.ListStudents)
		s.GET("/:id", students.GetStudent)
		s.PUT("/:id", students.UpdateStudent)
		s.DELETE("/:id", students.DeleteStudent)
	}

	g := rg.Group(PathGyms)
	{
		g.POST("", gyms.CreateGym)
		g.GET("", gyms.ListGyms)
		g.GET("/:id", gyms.GetGym)
		g.PUT("/:id", gyms.UpdateGym)
		g.DELETE("/:id", gyms.DeleteGym)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, tokens *usecase.TokenService) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", handlers.AuthMiddleware(tokens), h.Me)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.GET("/stats", h.PlatformStats)
	}
}

// Tracker routes are scoped to the authenticated user.
func addTrackerRoutes(rg *gin.RouterGroup, h *handlers.TrackerHandler, tokens *usecase.TokenService) {
	tracker := rg.Group(PathTracker, handlers.AuthMiddleware(tokens))
	{
		tracker.GET("/today", h.Today)
		tracker.POST("/meals", h.AddMeal)
		tracker.DELETE("/meals/:mealId", h.RemoveMeal)
		tracker.PUT("/goal", h.SetGoal)
		tracker.GET("/history", h.History)
	}
}
