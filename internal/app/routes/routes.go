package routes

import (
	"net/http"

	"github.com/Dermofet/MephiApp-sub000/internal/app/controllers"
	"github.com/Dermofet/MephiApp-sub000/internal/app/models/dto"
	"github.com/Dermofet/MephiApp-sub000/internal/middleware"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/auth"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/websocket"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	corpsController *controllers.CorpsController,
	roomController *controllers.RoomController,
	lessonController *controllers.LessonController,
	semesterController *controllers.SemesterController,
	freeRoomController *controllers.FreeRoomController,
	importController *controllers.ImportController,
	wsHandler *websocket.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/auth/login", authController.Login)

	corps := v1.Group("/corps")
	{
		corps.GET("", corpsController.GetAllCorps)
		corps.GET("/:id", corpsController.GetCorpsByID)
	}

	rooms := v1.Group("/rooms")
	{
		rooms.GET("", roomController.ListRooms)
		// registered before /:id so that "free" is not taken for an ID
		rooms.GET("/free", freeRoomController.GetFreeRooms)
		rooms.POST("/free", freeRoomController.PostFreeRooms)
		rooms.GET("/:id", roomController.GetRoomByID)
	}

	lessons := v1.Group("/lessons")
	{
		lessons.GET("", lessonController.ListLessons)
		lessons.GET("/:id", lessonController.GetLessonByID)
	}

	semester := v1.Group("/semester")
	{
		semester.GET("/start", semesterController.GetSemesterStart)
		semester.GET("/week", semesterController.GetWeekInfo)
	}

	// Schedule change feed
	v1.GET("/ws/schedule", wsHandler.HandleConnection)

	// --- Administrator routes ---
	admin := v1.Group("")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(auth.RoleAdmin))
	{
		admin.POST("/corps", corpsController.CreateCorps)
		admin.PUT("/corps/:id", corpsController.UpdateCorps)
		admin.DELETE("/corps/:id", corpsController.DeleteCorps)

		admin.POST("/rooms", roomController.CreateRoom)
		admin.PUT("/rooms/:id", roomController.UpdateRoom)
		admin.DELETE("/rooms/:id", roomController.DeleteRoom)
		admin.POST("/rooms/free/publish", freeRoomController.PublishFreeRooms)

		admin.POST("/lessons", lessonController.CreateLesson)
		admin.POST("/lessons/import", importController.ImportTimetable)
		admin.PUT("/lessons/:id", lessonController.UpdateLesson)
		admin.DELETE("/lessons/:id", lessonController.DeleteLesson)

		admin.PUT("/semester/start", semesterController.SetSemesterStart)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
