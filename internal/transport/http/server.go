package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appsvc "github.com/itseyans/ruric/internal/app"
	"github.com/itseyans/ruric/internal/bootstrap"
	"github.com/itseyans/ruric/internal/repository"
	"github.com/itseyans/ruric/internal/transport/http/handler"
	"github.com/itseyans/ruric/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	userRepo := repository.NewUserRepository(app.MySQL)
	chatLogRepo := repository.NewChatLogRepository(app.MySQL)
	assignmentRepo := repository.NewAssignmentRepository(app.MySQL)
	attendanceRepo := repository.NewAttendanceRepository(app.MySQL)
	productRepo := repository.NewProductRepository(app.MySQL)
	orderRepo := repository.NewOrderRepository(app.MySQL)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	escalationService := appsvc.NewEscalationService(
		chatLogRepo,
		assignmentRepo,
		userRepo,
		app.Responder,
		app.Config.Chat,
	)
	relayService := appsvc.NewRelayService(
		chatLogRepo,
		assignmentRepo,
		app.Notifier,
		app.Unread,
		app.Config.Chat,
	)
	directoryService := appsvc.NewDirectoryService(userRepo, attendanceRepo, productRepo, orderRepo)

	authHandler := handler.NewAuthHandler(authService)
	chatHandler := handler.NewChatHandler(escalationService)
	relayHandler := handler.NewRelayHandler(relayService)
	directoryHandler := handler.NewDirectoryHandler(directoryService)
	healthHandler := handler.NewHealthHandler(app)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Ruric backend running"})
	})
	router.GET("/healthz", healthHandler.Check)
	router.Static("/images", app.Config.App.ImageDir)

	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	router.GET("/me", middleware.AuthJWT(app.Config.Auth.JWTSecret), authHandler.Me)

	chat := router.Group("/chat")
	chat.POST("", chatHandler.Chat)
	chat.POST("/request-human", chatHandler.RequestHuman)
	chat.POST("/client/send", relayHandler.ClientSend)
	chat.GET("/employee/:employee_id/client/:client_id", relayHandler.EmployeeTranscript)
	chat.POST("/employee/reply", relayHandler.EmployeeReply)

	router.GET("/assignment/:client_id", chatHandler.GetAssignment)

	employee := router.Group("/employee")
	employee.GET("/:employee_id/assignments", relayHandler.EmployeeAssignments)
	employee.GET("/:employee_id/unread", relayHandler.UnreadCount)
	employee.DELETE("/:employee_id/unread", relayHandler.ClearUnread)

	router.POST("/attendance/mark", directoryHandler.MarkAttendance)
	router.GET("/attendance/:employee_id", directoryHandler.AttendanceRecords)

	admin := router.Group("/admin")
	admin.GET("/summary", directoryHandler.AdminSummary)
	admin.GET("/employees", directoryHandler.AdminEmployees)
	admin.GET("/employee_ratings", directoryHandler.EmployeeRatings)
	admin.GET("/chat/:employee_id", relayHandler.AdminTranscript)
	admin.POST("/chat/send", relayHandler.AdminSend)

	router.GET("/products", directoryHandler.Products)

	return router
}
