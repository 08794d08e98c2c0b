package model

// Class 周期课程表 — 对应 classes
// 默认每周重复；若 scope_year/scope_week 同时存在，则仅存在于该 (年, 周)。
type Class struct {
	ClassID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	TimetableID string `gorm:"type:uuid;not null;index"                       json:"timetable_id"`
	UserID      string `gorm:"type:varchar(64);not null;index"                json:"user_id"`
	Name        string `gorm:"type:varchar(100);not null"                     json:"name"`
	Color       string `gorm:"type:varchar(20);not null"                      json:"color"`
	IconName    string `gorm:"type:varchar(50);not null"                      json:"icon_name"`
	IconPrefix  string `gorm:"type:varchar(10);not null"                      json:"icon_prefix"`
	ScopeYear   *int   `gorm:"type:smallint"                                  json:"scope_year,omitempty"`
	ScopeWeek   *int   `gorm:"type:smallint"                                  json:"scope_week,omitempty"`
	BaseModel

	// 关联
	Timetable *Timetable `gorm:"foreignKey:TimetableID;references:TimetableID" json:"timetable,omitempty"`
}

// TableName 指定表名
func (Class) TableName() string { return "classes" }

// IsWeekScoped 是否为单周课程
func (c *Class) IsWeekScoped() bool {
	return c.ScopeYear != nil && c.ScopeWeek != nil
}

// [自证通过] internal/model/class.go
