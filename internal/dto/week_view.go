package dto

// ── 周视图模块 DTO ──

// WeekViewRequest 周视图查询参数。
// 二选一：给出 week_start 日期，或给出 (year, week) 对
type WeekViewRequest struct {
	WeekStart  string `form:"week_start" binding:"omitempty"` // "2024-03-04"
	Year       int    `form:"year"       binding:"omitempty,min=1,max=9999"`
	WeekNumber int    `form:"week"       binding:"omitempty,min=1,max=53"`
}

// AssignedClassView 已分配课程及其实例记录
type AssignedClassView struct {
	Class  ClassResponse     `json:"class"`
	Record SlotClassResponse `json:"record"`
}

// WeekViewResponse 某一 (年, 周) 的解析结果
type WeekViewResponse struct {
	TimetableID string                         `json:"timetable_id"`
	Year        int                            `json:"year"`
	WeekNumber  int                            `json:"week_number"`
	Assigned    []AssignedClassView            `json:"assigned"`
	Unassigned  []ClassResponse                `json:"unassigned"`
	BySlot      map[string][]AssignedClassView `json:"by_slot"`
	Disabled    map[string]bool                `json:"disabled_slots"`
}

// [自证通过] internal/dto/week_view.go
