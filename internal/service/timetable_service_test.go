package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mjf1406/slot-scheduler/config"
	"github.com/mjf1406/slot-scheduler/internal/dto"
	"github.com/mjf1406/slot-scheduler/internal/model"
)

// ════════════════════════════════════════════════════════════
// TimetableService 测试
// ════════════════════════════════════════════════════════════

func setupTestServices() (*Service, *testRepos) {
	agg, repos := newTestRepos()
	logger := zap.NewNop()
	cfg := &config.Config{Cache: config.CacheConfig{WeekViewTTL: time.Minute}}
	// cache 传 nil：缓存整体降级，测试只验证业务语义
	svc := NewService(cfg, agg, nil, logger)
	return svc, repos
}

// seedTimetable 周一至周五、8-17 点的基础课表
func seedTimetable(repos *testRepos, userID string) *model.Timetable {
	tt := &model.Timetable{
		UserID:    userID,
		Name:      "我的课表",
		Days:      model.StringArray{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		StartHour: 8,
		EndHour:   17,
	}
	_ = repos.timetable.Create(context.Background(), tt)
	return tt
}

func TestTimetableService_Create(t *testing.T) {
	svc, _ := setupTestServices()
	ctx := context.Background()

	resp, err := svc.Timetable.Create(ctx, &dto.CreateTimetableRequest{
		Name:      "我的课表",
		Days:      []string{"Monday", "Wednesday", "Friday"},
		StartHour: 8,
		EndHour:   16,
	}, "user-1")
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if resp.ID == "" {
		t.Error("创建后应生成 ID")
	}
	if len(resp.Days) != 3 {
		t.Errorf("Days 数量期望 3, 实际 %d", len(resp.Days))
	}
}

func TestTimetableService_Create_Invalid(t *testing.T) {
	svc, _ := setupTestServices()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     dto.CreateTimetableRequest
		wantErr error
	}{
		{
			name:    "未知星期名称",
			req:     dto.CreateTimetableRequest{Name: "t", Days: []string{"Funday"}, StartHour: 8, EndHour: 16},
			wantErr: ErrTimetableBadDays,
		},
		{
			name:    "空星期列表",
			req:     dto.CreateTimetableRequest{Name: "t", Days: nil, StartHour: 8, EndHour: 16},
			wantErr: ErrTimetableEmptyDays,
		},
		{
			name:    "起止整点颠倒",
			req:     dto.CreateTimetableRequest{Name: "t", Days: []string{"Monday"}, StartHour: 16, EndHour: 8},
			wantErr: ErrTimetableBadHours,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Timetable.Create(ctx, &tc.req, "user-1")
			if err != tc.wantErr {
				t.Errorf("期望 %v, 实际 %v", tc.wantErr, err)
			}
		})
	}
}

func TestTimetableService_Get_OwnershipEnforced(t *testing.T) {
	svc, repos := setupTestServices()
	ctx := context.Background()
	tt := seedTimetable(repos, "user-1")

	if _, err := svc.Timetable.Get(ctx, tt.TimetableID, "user-1"); err != nil {
		t.Fatalf("本人访问失败: %v", err)
	}
	if _, err := svc.Timetable.Get(ctx, tt.TimetableID, "user-2"); err != ErrTimetableNotFound {
		t.Errorf("他人访问期望 ErrTimetableNotFound, 实际 %v", err)
	}
}

func TestTimetableService_Delete(t *testing.T) {
	svc, repos := setupTestServices()
	ctx := context.Background()
	tt := seedTimetable(repos, "user-1")

	if err := svc.Timetable.Delete(ctx, tt.TimetableID, "user-1"); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}
	if _, err := svc.Timetable.Get(ctx, tt.TimetableID, "user-1"); err != ErrTimetableNotFound {
		t.Errorf("删除后期望 ErrTimetableNotFound, 实际 %v", err)
	}
}

// ════════════════════════════════════════════════════════════
// SlotService 测试
// ════════════════════════════════════════════════════════════

func TestSlotService_Create_RejectsOverlap(t *testing.T) {
	svc, repos := setupTestServices()
	ctx := context.Background()
	tt := seedTimetable(repos, "user-1")

	if _, err := svc.Slot.Create(ctx, tt.TimetableID, &dto.CreateSlotRequest{
		Weekday: "Monday", StartTime: "09:00", EndTime: "10:00",
	}, "user-1"); err != nil {
		t.Fatalf("创建首个时段失败: %v", err)
	}

	// 区间相交 → 拒绝
	_, err := svc.Slot.Create(ctx, tt.TimetableID, &dto.CreateSlotRequest{
		Weekday: "Monday", StartTime: "09:30", EndTime: "10:30",
	}, "user-1")
	if err != ErrSlotOverlap {
		t.Errorf("重叠时段期望 ErrSlotOverlap, 实际 %v", err)
	}

	// 首尾相接（半开区间）→ 允许
	if _, err := svc.Slot.Create(ctx, tt.TimetableID, &dto.CreateSlotRequest{
		Weekday: "Monday", StartTime: "10:00", EndTime: "11:00",
	}, "user-1"); err != nil {
		t.Errorf("首尾相接的时段不应拒绝: %v", err)
	}

	// 不同星期同时间 → 允许
	if _, err := svc.Slot.Create(ctx, tt.TimetableID, &dto.CreateSlotRequest{
		Weekday: "Tuesday", StartTime: "09:00", EndTime: "10:00",
	}, "user-1"); err != nil {
		t.Errorf("不同星期的同时间时段不应拒绝: %v", err)
	}
}

func TestSlotService_Update_ExcludesSelf(t *testing.T) {
	svc, repos := setupTestServices()
	ctx := context.Background()
	tt := seedTimetable(repos, "user-1")

	created, err := svc.Slot.Create(ctx, tt.TimetableID, &dto.CreateSlotRequest{
		Weekday: "Monday", StartTime: "09:00", EndTime: "10:00",
	}, "user-1")
	if err != nil {
		t.Fatalf("创建时段失败: %v", err)
	}

	// 仅延长结束时间：与旧的自己"重叠"，但必须排除自身
	newEnd := "10:30"
	updated, err := svc.Slot.Update(ctx, created.ID, &dto.UpdateSlotRequest{EndTime: &newEnd}, "user-1")
	if err != nil {
		t.Fatalf("更新时段不应因与自身重叠而失败: %v", err)
	}
	if updated.EndTime != "10:30" {
		t.Errorf("EndTime 期望 10:30, 实际 %s", updated.EndTime)
	}
}

func TestSlotService_Update_WeekdayOnlyKeepsStoredTimes(t *testing.T) {
	svc, repos := setupTestServices()
	ctx := context.Background()
	tt := seedTimetable(repos, "user-1")

	created, err := svc.Slot.Create(ctx, tt.TimetableID, &dto.CreateSlotRequest{
		Weekday: "Monday", StartTime: "09:00", EndTime: "10:00",
	}, "user-1")
	if err != nil {
		t.Fatalf("创建时段失败: %v", err)
	}

	// 只改星期：合并后的记录用库里回读的 HH:MM 重新过校验，必须原样通过
	newDay := "Tuesday"
	updated, err := svc.Slot.Update(ctx, created.ID, &dto.UpdateSlotRequest{Weekday: &newDay}, "user-1")
	if err != nil {
		t.Fatalf("仅更新星期不应触发时间校验失败: %v", err)
	}
	if updated.Weekday != "Tuesday" || updated.StartTime != "09:00" || updated.EndTime != "10:00" {
		t.Errorf("星期应更新且时间原样保留: %+v", updated)
	}

	// 紧随其后的时段不与既有时段冲突：[09:00,10:00) 与 [10:00,11:00) 半开相接
	if _, err := svc.Slot.Create(ctx, tt.TimetableID, &dto.CreateSlotRequest{
		Weekday: "Tuesday", StartTime: "10:00", EndTime: "11:00",
	}, "user-1"); err != nil {
		t.Errorf("首尾相接的时段不应判为重叠: %v", err)
	}
}

func TestSlotService_Delete_CascadesDependents(t *testing.T) {
	svc, repos := setupTestServices()
	ctx := context.Background()
	tt := seedTimetable(repos, "user-1")

	slot, _ := svc.Slot.Create(ctx, tt.TimetableID, &dto.CreateSlotRequest{
		Weekday: "Monday", StartTime: "09:00", EndTime: "10:00",
	}, "user-1")
	cls, _ := svc.Class.Create(ctx, tt.TimetableID, &dto.CreateClassRequest{
		Name: "数学", Color: "#ff0000", IconName: "book", IconPrefix: "fas",
	}, "user-1")

	// 分配 + 停用例外各挂一条依赖行
	if _, err := svc.Assignment.Move(ctx, tt.TimetableID, &dto.MoveClassRequest{
		ClassID: cls.ID, SlotID: slot.ID, Year: 2024, WeekNumber: 10,
	}, "user-1"); err != nil {
		t.Fatalf("Move 失败: %v", err)
	}
	if _, err := svc.Slot.ToggleDisabled(ctx, slot.ID, &dto.ToggleDisabledRequest{Date: "2024-03-11"}, "user-1"); err != nil {
		t.Fatalf("ToggleDisabled 失败: %v", err)
	}

	if err := svc.Slot.Delete(ctx, slot.ID, "user-1"); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}

	rows, _ := repos.slotClass.ListByTimetable(ctx, tt.TimetableID)
	for _, r := range rows {
		if r.SlotID != nil && *r.SlotID == slot.ID {
			t.Error("指向已删时段的每周记录应被级联清理")
		}
	}
	if exists, _ := repos.disabled.Exists(ctx, slot.ID, "2024-03-11"); exists {
		t.Error("已删时段的停用例外应被级联清理")
	}
}

func TestSlotService_ToggleDisabled_Idempotent(t *testing.T) {
	svc, repos := setupTestServices()
	ctx := context.Background()
	tt := seedTimetable(repos, "user-1")

	slot, _ := svc.Slot.Create(ctx, tt.TimetableID, &dto.CreateSlotRequest{
		Weekday: "Monday", StartTime: "09:00", EndTime: "10:00",
	}, "user-1")

	// 第一次翻转 → 停用
	resp, err := svc.Slot.ToggleDisabled(ctx, slot.ID, &dto.ToggleDisabledRequest{Date: "2024-03-04"}, "user-1")
	if err != nil {
		t.Fatalf("第一次翻转失败: %v", err)
	}
	if resp.Status != "disabled" {
		t.Errorf("第一次翻转状态期望 disabled, 实际 %s", resp.Status)
	}

	// 第二次翻转 → 恢复启用，且不残留记录
	resp, err = svc.Slot.ToggleDisabled(ctx, slot.ID, &dto.ToggleDisabledRequest{Date: "2024-03-04"}, "user-1")
	if err != nil {
		t.Fatalf("第二次翻转失败: %v", err)
	}
	if resp.Status != "enabled" {
		t.Errorf("第二次翻转状态期望 enabled, 实际 %s", resp.Status)
	}
	if exists, _ := repos.disabled.Exists(ctx, slot.ID, "2024-03-04"); exists {
		t.Error("两次翻转后不应残留停用记录")
	}
}

// ════════════════════════════════════════════════════════════
// ClassService 测试
// ════════════════════════════════════════════════════════════

func TestClassService_Create_ScopePair(t *testing.T) {
	svc, repos := setupTestServices()
	ctx := context.Background()
	tt := seedTimetable(repos, "user-1")

	year, week := 2024, 10
	// 成对给出 → 允许
	if _, err := svc.Class.Create(ctx, tt.TimetableID, &dto.CreateClassRequest{
		Name: "讲座", Color: "#00ff00", IconName: "mic", IconPrefix: "fas",
		ScopeYear: &year, ScopeWeek: &week,
	}, "user-1"); err != nil {
		t.Fatalf("成对 scope 创建失败: %v", err)
	}

	// 只给一半 → 拒绝
	_, err := svc.Class.Create(ctx, tt.TimetableID, &dto.CreateClassRequest{
		Name: "讲座2", Color: "#00ff00", IconName: "mic", IconPrefix: "fas",
		ScopeYear: &year,
	}, "user-1")
	if err != ErrClassScopePair {
		t.Errorf("半对 scope 期望 ErrClassScopePair, 实际 %v", err)
	}
}

func TestClassService_Delete_CascadesRecords(t *testing.T) {
	svc, repos := setupTestServices()
	ctx := context.Background()
	tt := seedTimetable(repos, "user-1")

	slot, _ := svc.Slot.Create(ctx, tt.TimetableID, &dto.CreateSlotRequest{
		Weekday: "Monday", StartTime: "09:00", EndTime: "10:00",
	}, "user-1")
	cls, _ := svc.Class.Create(ctx, tt.TimetableID, &dto.CreateClassRequest{
		Name: "数学", Color: "#ff0000", IconName: "book", IconPrefix: "fas",
	}, "user-1")

	_, _ = svc.Assignment.Move(ctx, tt.TimetableID, &dto.MoveClassRequest{
		ClassID: cls.ID, SlotID: slot.ID, Year: 2024, WeekNumber: 10,
	}, "user-1")

	if err := svc.Class.Delete(ctx, cls.ID, "user-1"); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}

	rows, _ := repos.slotClass.ListByTimetable(ctx, tt.TimetableID)
	if len(rows) != 0 {
		t.Errorf("删除课程后每周记录期望 0 条, 实际 %d 条", len(rows))
	}
}
