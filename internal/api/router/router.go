package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mjf1406/slot-scheduler/config"
	"github.com/mjf1406/slot-scheduler/internal/api/handler"
	"github.com/mjf1406/slot-scheduler/internal/api/middleware"
	"github.com/mjf1406/slot-scheduler/pkg/jwt"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr))
		{
			// 课表模块
			timetables := authorized.Group("/timetables")
			{
				timetables.POST("", h.Timetable.Create)
				timetables.GET("", h.Timetable.List)
				timetables.GET("/:id", h.Timetable.Get)
				timetables.PUT("/:id", h.Timetable.Update)
				timetables.DELETE("/:id", h.Timetable.Delete)

				// 子资源：时段与课程在所属课表下创建
				timetables.POST("/:id/slots", h.Slot.Create)
				timetables.POST("/:id/classes", h.Class.Create)

				// 周视图
				timetables.GET("/:id/week", h.WeekView.Get)

				// 分配变更
				assignments := timetables.Group("/:id/assignments")
				{
					assignments.POST("/move", h.Assignment.Move)
					assignments.POST("/unassign", h.Assignment.Unassign)
					assignments.POST("/toggle-hidden", h.Assignment.ToggleHidden)
					assignments.POST("/toggle-complete", h.Assignment.ToggleComplete)
					assignments.POST("/details", h.Assignment.UpdateDetails)
				}

				// 导出模块
				export := timetables.Group("/:id/export")
				{
					export.GET("/xlsx", h.Export.ExportWeekExcel)
					export.GET("/ics", h.Export.ExportWeekICS)
				}
			}

			// 时段模块
			slots := authorized.Group("/slots")
			{
				slots.PUT("/:id", h.Slot.Update)
				slots.DELETE("/:id", h.Slot.Delete)
				slots.POST("/:id/disabled", h.Slot.ToggleDisabled)
			}

			// 课程模块
			classes := authorized.Group("/classes")
			{
				classes.PUT("/:id", h.Class.Update)
				classes.DELETE("/:id", h.Class.Delete)
			}

			// 拖放仲裁
			authorized.POST("/drag/resolve", h.Drag.ResolveDrop)
		}
	}

	return r
}
