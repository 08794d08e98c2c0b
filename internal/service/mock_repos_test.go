package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mjf1406/slot-scheduler/internal/model"
	"github.com/mjf1406/slot-scheduler/internal/repository"
	"github.com/mjf1406/slot-scheduler/internal/schedule"
)

// ── Mock TimetableRepository ──
//
// GetByID 按真实实现的行为装配关联：时段、课程与每周记录来自兄弟 mock

type mockTimetableRepo struct {
	timetables  map[string]*model.Timetable
	idCounter   int
	slots       *mockSlotRepo
	classes     *mockClassRepo
	slotClasses *mockSlotClassRepo
}

func (m *mockTimetableRepo) Create(_ context.Context, tt *model.Timetable) error {
	if tt.TimetableID == "" {
		m.idCounter++
		tt.TimetableID = fmt.Sprintf("tt-%d", m.idCounter)
	}
	m.timetables[tt.TimetableID] = tt
	return nil
}

func (m *mockTimetableRepo) GetByID(_ context.Context, id, userID string) (*model.Timetable, error) {
	tt, ok := m.timetables[id]
	if !ok || tt.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *tt
	cp.Slots, _ = m.slots.ListByTimetable(context.Background(), id)
	cp.Classes, _ = m.classes.ListByTimetable(context.Background(), id)
	cp.SlotClasses, _ = m.slotClasses.ListByTimetable(context.Background(), id)
	return &cp, nil
}

func (m *mockTimetableRepo) ListByUser(_ context.Context, userID string) ([]model.Timetable, error) {
	var result []model.Timetable
	for _, tt := range m.timetables {
		if tt.UserID == userID {
			result = append(result, *tt)
		}
	}
	return result, nil
}

func (m *mockTimetableRepo) Update(_ context.Context, tt *model.Timetable) error {
	m.timetables[tt.TimetableID] = tt
	return nil
}

func (m *mockTimetableRepo) Delete(_ context.Context, id, userID string) error {
	if tt, ok := m.timetables[id]; !ok || tt.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(m.timetables, id)
	return nil
}

// ── Mock SlotRepository ──

type mockSlotRepo struct {
	slots       map[string]*model.Slot
	idCounter   int
	slotClasses *mockSlotClassRepo
	disabled    *mockDisabledSlotRepo
}

func (m *mockSlotRepo) Create(_ context.Context, slot *model.Slot) error {
	if slot.SlotID == "" {
		m.idCounter++
		slot.SlotID = fmt.Sprintf("slot-%d", m.idCounter)
	}
	m.slots[slot.SlotID] = slot
	return nil
}

func (m *mockSlotRepo) GetByID(_ context.Context, id string) (*model.Slot, error) {
	if s, ok := m.slots[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSlotRepo) ListByTimetable(_ context.Context, timetableID string) ([]model.Slot, error) {
	var result []model.Slot
	for _, s := range m.slots {
		if s.TimetableID == timetableID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSlotRepo) ListByWeekday(_ context.Context, timetableID, weekday, excludeID string) ([]model.Slot, error) {
	var result []model.Slot
	for _, s := range m.slots {
		if s.TimetableID != timetableID || s.Weekday != weekday {
			continue
		}
		if excludeID != "" && s.SlotID == excludeID {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSlotRepo) Update(_ context.Context, slot *model.Slot) error {
	m.slots[slot.SlotID] = slot
	return nil
}

func (m *mockSlotRepo) Delete(_ context.Context, id, userID string) error {
	s, ok := m.slots[id]
	if !ok || s.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	m.slotClasses.deleteBySlot(id)
	m.disabled.deleteBySlot(id)
	delete(m.slots, id)
	return nil
}

// ── Mock ClassRepository ──

type mockClassRepo struct {
	classes     map[string]*model.Class
	idCounter   int
	slotClasses *mockSlotClassRepo
}

func (m *mockClassRepo) Create(_ context.Context, cls *model.Class) error {
	if cls.ClassID == "" {
		m.idCounter++
		cls.ClassID = fmt.Sprintf("class-%d", m.idCounter)
	}
	m.classes[cls.ClassID] = cls
	return nil
}

func (m *mockClassRepo) GetByID(_ context.Context, id string) (*model.Class, error) {
	if c, ok := m.classes[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) ListByTimetable(_ context.Context, timetableID string) ([]model.Class, error) {
	var result []model.Class
	for _, c := range m.classes {
		if c.TimetableID == timetableID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockClassRepo) Update(_ context.Context, cls *model.Class) error {
	m.classes[cls.ClassID] = cls
	return nil
}

func (m *mockClassRepo) Delete(_ context.Context, id, userID string) error {
	c, ok := m.classes[id]
	if !ok || c.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	m.slotClasses.deleteByClass(id)
	delete(m.classes, id)
	return nil
}

// ── Mock SlotClassRepository ──
//
// Upsert 模拟真实实现的唯一性与乐观锁语义

type mockSlotClassRepo struct {
	rows []model.SlotClass
}

func (m *mockSlotClassRepo) ListForWeek(_ context.Context, timetableID string, year, week int) ([]model.SlotClass, error) {
	var result []model.SlotClass
	for _, r := range m.rows {
		if r.TimetableID == timetableID && r.Year == year && r.WeekNumber == week {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockSlotClassRepo) ListByTimetable(_ context.Context, timetableID string) ([]model.SlotClass, error) {
	var result []model.SlotClass
	for _, r := range m.rows {
		if r.TimetableID == timetableID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockSlotClassRepo) GetByClassWeek(_ context.Context, classID string, year, week int) (*model.SlotClass, error) {
	for i, r := range m.rows {
		if r.ClassID == classID && r.Year == year && r.WeekNumber == week {
			return &m.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSlotClassRepo) Upsert(_ context.Context, sc *model.SlotClass) error {
	for i, r := range m.rows {
		if r.ClassID == sc.ClassID && r.Year == sc.Year && r.WeekNumber == sc.WeekNumber {
			sc.ID = r.ID
			sc.Version = r.Version + 1
			m.rows[i] = *sc
			return nil
		}
	}
	sc.Version = 1
	m.rows = append(m.rows, *sc)
	return nil
}

func (m *mockSlotClassRepo) deleteBySlot(slotID string) {
	var remaining []model.SlotClass
	for _, r := range m.rows {
		if r.SlotID != nil && *r.SlotID == slotID {
			continue
		}
		remaining = append(remaining, r)
	}
	m.rows = remaining
}

func (m *mockSlotClassRepo) deleteByClass(classID string) {
	var remaining []model.SlotClass
	for _, r := range m.rows {
		if r.ClassID == classID {
			continue
		}
		remaining = append(remaining, r)
	}
	m.rows = remaining
}

// ── Mock DisabledSlotRepository ──

type mockDisabledSlotRepo struct {
	rows      []model.DisabledSlot
	slots     *mockSlotRepo
	idCounter int
}

func (m *mockDisabledSlotRepo) ListByTimetable(_ context.Context, timetableID string) ([]model.DisabledSlot, error) {
	var result []model.DisabledSlot
	for _, d := range m.rows {
		if s, ok := m.slots.slots[d.SlotID]; ok && s.TimetableID == timetableID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (m *mockDisabledSlotRepo) ListBySlotIDs(_ context.Context, slotIDs []string) ([]model.DisabledSlot, error) {
	want := make(map[string]bool, len(slotIDs))
	for _, id := range slotIDs {
		want[id] = true
	}
	var result []model.DisabledSlot
	for _, d := range m.rows {
		if want[d.SlotID] {
			result = append(result, d)
		}
	}
	return result, nil
}

func (m *mockDisabledSlotRepo) Exists(_ context.Context, slotID, date string) (bool, error) {
	for _, d := range m.rows {
		if d.SlotID == slotID && d.DisableDate == date {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDisabledSlotRepo) Toggle(_ context.Context, slotID, date, userID string) (schedule.DisabledStatus, error) {
	var prior *model.DisabledSlot
	for i, d := range m.rows {
		if d.SlotID == slotID && d.DisableDate == date {
			prior = &m.rows[i]
			break
		}
	}

	op, status := schedule.ToggleDisabledDate(prior, slotID, date, userID)
	switch op.Kind {
	case schedule.OpInsertDisabled:
		m.idCounter++
		op.DisabledSlot.ID = fmt.Sprintf("ds-%d", m.idCounter)
		m.rows = append(m.rows, *op.DisabledSlot)
	case schedule.OpDeleteDisabled:
		var remaining []model.DisabledSlot
		for _, d := range m.rows {
			if d.ID != op.DisabledSlot.ID {
				remaining = append(remaining, d)
			}
		}
		m.rows = remaining
	}
	return status, nil
}

func (m *mockDisabledSlotRepo) deleteBySlot(slotID string) {
	var remaining []model.DisabledSlot
	for _, d := range m.rows {
		if d.SlotID != slotID {
			remaining = append(remaining, d)
		}
	}
	m.rows = remaining
}

// ── 测试辅助：装配互相引用的 mock 聚合 ──

type testRepos struct {
	timetable *mockTimetableRepo
	slot      *mockSlotRepo
	class     *mockClassRepo
	slotClass *mockSlotClassRepo
	disabled  *mockDisabledSlotRepo
}

func newTestRepos() (*repository.Repository, *testRepos) {
	slotClasses := &mockSlotClassRepo{}
	slots := &mockSlotRepo{slots: make(map[string]*model.Slot), slotClasses: slotClasses}
	classes := &mockClassRepo{classes: make(map[string]*model.Class), slotClasses: slotClasses}
	disabled := &mockDisabledSlotRepo{slots: slots}
	slots.disabled = disabled
	timetables := &mockTimetableRepo{
		timetables:  make(map[string]*model.Timetable),
		slots:       slots,
		classes:     classes,
		slotClasses: slotClasses,
	}

	repos := &testRepos{
		timetable: timetables,
		slot:      slots,
		class:     classes,
		slotClass: slotClasses,
		disabled:  disabled,
	}
	agg := &repository.Repository{
		Timetable:    timetables,
		Slot:         slots,
		Class:        classes,
		SlotClass:    slotClasses,
		DisabledSlot: disabled,
	}
	return agg, repos
}
