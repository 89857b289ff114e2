package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/config"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/api/handler"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/api/middleware"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/pkg/jwt"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/pkg/redis"
)

const (
	defaultBodyLimit = 1 << 20  // 1 MiB for JSON payloads
	importBodyLimit  = 10 << 20 // 10 MiB for roster uploads
)

// Setup builds the Gin engine with all routes and middleware wired.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// authentication (no token required; login is rate limited)
		auth := v1.Group("/auth")
		auth.Use(middleware.BodyLimit(defaultBodyLimit))
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// everything below requires a valid access token
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		authorized.Use(middleware.BodyLimit(defaultBodyLimit))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// console accounts (admin only)
			users := authorized.Group("/users", middleware.RoleAuth("admin"))
			{
				users.POST("", h.User.Create)
				users.GET("", h.User.List)
				users.GET("/:id", h.User.Get)
				users.PUT("/:id", h.User.Update)
				users.DELETE("/:id", h.User.Delete)
			}

			// faculty catalog
			faculties := authorized.Group("/faculties")
			{
				faculties.GET("", h.Faculty.List)
				faculties.GET("/:id", h.Faculty.Get)
				faculties.POST("", middleware.RoleAuth("admin"), h.Faculty.Create)
				faculties.PUT("/:id", middleware.RoleAuth("admin"), h.Faculty.Update)
				faculties.DELETE("/:id", middleware.RoleAuth("admin"), h.Faculty.Delete)
			}

			// career catalog
			careers := authorized.Group("/careers")
			{
				careers.GET("", h.Career.List)
				careers.GET("/:id", h.Career.Get)
				careers.POST("", middleware.RoleAuth("admin", "dean"), h.Career.Create)
				careers.PUT("/:id", middleware.RoleAuth("admin", "dean"), h.Career.Update)
				careers.DELETE("/:id", middleware.RoleAuth("admin", "dean"), h.Career.Delete)
			}

			// subject catalog
			subjects := authorized.Group("/subjects")
			{
				subjects.GET("", h.Subject.List)
				subjects.GET("/:id", h.Subject.Get)
				subjects.POST("", middleware.RoleAuth("admin", "dean"), h.Subject.Create)
				subjects.PUT("/:id", middleware.RoleAuth("admin", "dean"), h.Subject.Update)
				subjects.DELETE("/:id", middleware.RoleAuth("admin", "dean"), h.Subject.Delete)
			}

			// room types and rooms
			roomTypes := authorized.Group("/room-types")
			{
				roomTypes.GET("", h.Room.ListTypes)
				roomTypes.POST("", middleware.RoleAuth("admin"), h.Room.CreateType)
			}
			rooms := authorized.Group("/rooms")
			{
				rooms.GET("", h.Room.List)
				rooms.GET("/:id", h.Room.Get)
				rooms.POST("", middleware.RoleAuth("admin"), h.Room.Create)
				rooms.PUT("/:id", middleware.RoleAuth("admin"), h.Room.Update)
				rooms.DELETE("/:id", middleware.RoleAuth("admin"), h.Room.Delete)
			}

			// academic cycles
			cycles := authorized.Group("/cycles")
			{
				cycles.GET("", h.Cycle.List)
				cycles.GET("/active", h.Cycle.GetActive)
				cycles.GET("/:id", h.Cycle.Get)
				cycles.POST("", middleware.RoleAuth("admin"), h.Cycle.Create)
				cycles.PUT("/:id", middleware.RoleAuth("admin"), h.Cycle.Update)
				cycles.PUT("/:id/status", middleware.RoleAuth("admin", "dean"), h.Cycle.UpdateStatus)
				cycles.PUT("/:id/activate", middleware.RoleAuth("admin"), h.Cycle.Activate)
				cycles.DELETE("/:id", middleware.RoleAuth("admin"), h.Cycle.Delete)
			}

			// study plans
			studyPlans := authorized.Group("/study-plans")
			{
				studyPlans.GET("", h.StudyPlan.List)
				studyPlans.GET("/:id", h.StudyPlan.Get)
				studyPlans.POST("", middleware.RoleAuth("admin", "dean"), h.StudyPlan.Create)
				studyPlans.PUT("/:id", middleware.RoleAuth("admin", "dean"), h.StudyPlan.Update)
				studyPlans.DELETE("/:id", middleware.RoleAuth("admin", "dean"), h.StudyPlan.Delete)
			}

			// teacher registry
			teachers := authorized.Group("/teachers")
			{
				teachers.GET("", h.Teacher.List)
				teachers.GET("/:id", h.Teacher.Get)
				teachers.POST("", middleware.RoleAuth("admin", "dean"), h.Teacher.Create)
				teachers.PUT("/:id", middleware.RoleAuth("admin", "dean"), h.Teacher.Update)
				teachers.DELETE("/:id", middleware.RoleAuth("admin", "dean"), h.Teacher.Delete)
				teachers.POST("/import",
					middleware.RoleAuth("admin", "dean"),
					middleware.BodyLimit(importBodyLimit),
					h.Teacher.ImportRoster)

				// per-teacher availability
				teachers.GET("/:id/availability", h.Availability.Get)
				teachers.PUT("/:id/availability", h.Availability.Save)
			}

			// time blocks
			timeBlocks := authorized.Group("/time-blocks")
			{
				timeBlocks.GET("", h.TimeBlock.List)
				timeBlocks.POST("", middleware.RoleAuth("admin"), h.TimeBlock.Create)
				timeBlocks.PUT("/:id", middleware.RoleAuth("admin"), h.TimeBlock.Update)
				timeBlocks.DELETE("/:id", middleware.RoleAuth("admin"), h.TimeBlock.Delete)
			}

			// placement grid
			timetable := authorized.Group("/timetable")
			{
				timetable.GET("", h.Timetable.GetView)
				timetable.POST("/sessions", middleware.RoleAuth("admin", "dean"), h.Timetable.AddSession)
				timetable.PUT("/sessions/:id/move", middleware.RoleAuth("admin", "dean"), h.Timetable.MoveSession)
				timetable.PUT("/sessions/:id", middleware.RoleAuth("admin", "dean"), h.Timetable.UpdateSession)
				timetable.DELETE("/sessions/:id", middleware.RoleAuth("admin", "dean"), h.Timetable.RemoveSession)
			}

			// schedule downloads
			export := authorized.Group("/export")
			{
				export.GET("/xlsx", h.Export.ExportXLSX)
				export.GET("/ics", h.Export.ExportICS)
			}
		}
	}

	return r
}
