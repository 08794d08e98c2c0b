package service

import (
	"context"
	"strings"
	"testing"

	"github.com/mjf1406/slot-scheduler/internal/dto"
)

// ════════════════════════════════════════════════════════════
// ExportService 测试
// ════════════════════════════════════════════════════════════

func TestExportService_ExportWeekExcel(t *testing.T) {
	fx := setupAssignmentFixture(t)
	ctx := context.Background()

	_, _ = fx.svc.Assignment.Move(ctx, fx.tt.TimetableID, &dto.MoveClassRequest{
		ClassID: fx.c1.ID, SlotID: fx.slot.ID, Year: 2024, WeekNumber: 10,
	}, "user-1")

	buf, filename, err := fx.svc.Export.ExportWeekExcel(ctx, fx.tt.TimetableID,
		&dto.WeekViewRequest{Year: 2024, WeekNumber: 10}, "user-1")
	if err != nil {
		t.Fatalf("ExportWeekExcel 失败: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Excel 内容不应为空")
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名期望 .xlsx 结尾, 实际 %s", filename)
	}
}

func TestExportService_ExportWeekExcel_NoSlots(t *testing.T) {
	svc, repos := setupTestServices()
	ctx := context.Background()
	tt := seedTimetable(repos, "user-1")

	_, _, err := svc.Export.ExportWeekExcel(ctx, tt.TimetableID,
		&dto.WeekViewRequest{Year: 2024, WeekNumber: 10}, "user-1")
	if err != ErrExportNoSlots {
		t.Errorf("无时段导出期望 ErrExportNoSlots, 实际 %v", err)
	}
}

func TestExportService_ExportWeekICS(t *testing.T) {
	fx := setupAssignmentFixture(t)
	ctx := context.Background()

	_, _ = fx.svc.Assignment.Move(ctx, fx.tt.TimetableID, &dto.MoveClassRequest{
		ClassID: fx.c1.ID, SlotID: fx.slot.ID, Year: 2024, WeekNumber: 10,
	}, "user-1")

	buf, filename, err := fx.svc.Export.ExportWeekICS(ctx, fx.tt.TimetableID,
		&dto.WeekViewRequest{Year: 2024, WeekNumber: 10}, "user-1")
	if err != nil {
		t.Fatalf("ExportWeekICS 失败: %v", err)
	}
	content := buf.String()
	if !strings.Contains(content, "BEGIN:VCALENDAR") {
		t.Error("缺少 VCALENDAR 头")
	}
	if !strings.Contains(content, "SUMMARY:数学") {
		t.Error("事件摘要应为课程名")
	}
	// 2024 年第 10 周周一 09:00
	if !strings.Contains(content, "DTSTART:20240304T090000") {
		t.Errorf("事件开始时间应为 2024-03-04 09:00, 内容:\n%s", content)
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("文件名期望 .ics 结尾, 实际 %s", filename)
	}
}

func TestExportService_ExportWeekICS_SkipsDisabledSlotInstance(t *testing.T) {
	fx := setupAssignmentFixture(t)
	ctx := context.Background()

	// 先分配，再把时段在本周对应日期停用
	_, err := fx.svc.Assignment.Move(ctx, fx.tt.TimetableID, &dto.MoveClassRequest{
		ClassID: fx.c1.ID, SlotID: fx.slot.ID, Year: 2024, WeekNumber: 10,
	}, "user-1")
	if err != nil {
		t.Fatalf("Move 失败: %v", err)
	}
	if _, err := fx.svc.Slot.ToggleDisabled(ctx, fx.slot.ID,
		&dto.ToggleDisabledRequest{Date: "2024-03-04"}, "user-1"); err != nil {
		t.Fatalf("ToggleDisabled 失败: %v", err)
	}

	buf, _, err := fx.svc.Export.ExportWeekICS(ctx, fx.tt.TimetableID,
		&dto.WeekViewRequest{Year: 2024, WeekNumber: 10}, "user-1")
	if err != nil {
		t.Fatalf("ExportWeekICS 失败: %v", err)
	}
	content := buf.String()
	if strings.Contains(content, "BEGIN:VEVENT") {
		t.Errorf("停用时段实例不应生成事件, 内容:\n%s", content)
	}

	// 其他周不受单日停用影响
	buf, _, err = fx.svc.Export.ExportWeekICS(ctx, fx.tt.TimetableID,
		&dto.WeekViewRequest{Year: 2024, WeekNumber: 11}, "user-1")
	if err != nil {
		t.Fatalf("ExportWeekICS 失败: %v", err)
	}
	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Error("第 11 周无分配记录, 不应生成事件")
	}
}

// ── DragService 测试 ──

func TestDragService_ResolveDrop(t *testing.T) {
	svc, _ := setupTestServices()
	ctx := context.Background()

	req := &dto.ResolveDropRequest{
		Pointer: dto.PointerPosition{X: 50, Y: 50},
		Regions: []dto.DraggableRegion{
			{Kind: "UnassignedArea", Rect: dto.RegionRect{Left: 0, Top: 0, Right: 200, Bottom: 200}, RefID: "pool"},
			{Kind: "ClassItem", Rect: dto.RegionRect{Left: 40, Top: 40, Right: 80, Bottom: 80}, RefID: "class-1"},
			{Kind: "Slot", Rect: dto.RegionRect{Left: 30, Top: 30, Right: 100, Bottom: 100}, RefID: "slot-1"},
		},
	}

	// 三层都包含指针：时段优先
	resp := svc.Drag.ResolveDrop(ctx, req)
	if !resp.Found || resp.TargetID != "slot-1" || resp.Kind != "Slot" {
		t.Errorf("期望命中 slot-1, 实际 %+v", resp)
	}

	// 指针在所有区域之外 → 无目标
	req.Pointer = dto.PointerPosition{X: 500, Y: 500}
	resp = svc.Drag.ResolveDrop(ctx, req)
	if resp.Found {
		t.Errorf("区域外指针不应命中目标, 实际 %+v", resp)
	}
}
