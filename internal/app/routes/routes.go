package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bridgelms/bridgelms/internal/app/controllers"
	"github.com/bridgelms/bridgelms/internal/app/models/dto"
	"github.com/bridgelms/bridgelms/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	attendanceController *controllers.AttendanceController,
	resourceController *controllers.ResourceController,
	announcementController *controllers.AnnouncementController,
	calendarController *controllers.CalendarController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Liveness endpoint (public, unversioned)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, dto.NewMessageResponse("pong"))
	})

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	users := v1.Group("/users")
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
	}

	// Course discovery and tutor contact are public
	v1.GET("/courses", courseController.ListCourses)
	v1.GET("/courses/:id/tutor", courseController.GetCourseTutor)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		usersProtected := authenticated.Group("/users")
		{
			usersProtected.GET("/profile", authController.GetProfile)
			usersProtected.PUT("/profile", authController.UpdateProfile)
		}

		coursesProtected := authenticated.Group("/courses")
		{
			coursesProtected.POST("", courseController.CreateCourse)
			coursesProtected.GET("/my-courses", courseController.MyCourses)
			coursesProtected.POST("/:id/enroll", courseController.Enroll)
		}

		attendance := authenticated.Group("/attendance")
		{
			attendance.POST("/checkin/:id", attendanceController.CheckIn)
			attendance.GET("/course/:id", attendanceController.CourseAttendance)
			attendance.GET("/my-attendance", attendanceController.MyAttendance)
		}

		resources := authenticated.Group("/resources")
		{
			resources.POST("", resourceController.CreateResource)
			resources.GET("/course/:id", resourceController.CourseResources)
		}

		announcements := authenticated.Group("/announcements")
		{
			announcements.POST("", announcementController.CreateAnnouncement)
			announcements.GET("/course/:id", announcementController.CourseAnnouncements)
		}

		authenticated.GET("/calendar/events", calendarController.ListEvents)
	}
}
