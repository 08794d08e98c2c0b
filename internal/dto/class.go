package dto

// ── 课程模块 DTO ──

// CreateClassRequest 创建课程请求
// scope_year 与 scope_week 须同时给出或同时省略；给出时课程仅存在于该 (年, 周)
type CreateClassRequest struct {
	Name       string `json:"name"        binding:"required,min=1,max=100"`
	Color      string `json:"color"       binding:"required,max=20"`
	IconName   string `json:"icon_name"   binding:"required,max=50"`
	IconPrefix string `json:"icon_prefix" binding:"required,max=10"`
	ScopeYear  *int   `json:"scope_year"  binding:"omitempty,min=1,max=9999"`
	ScopeWeek  *int   `json:"scope_week"  binding:"omitempty,min=1,max=53"`
}

// UpdateClassRequest 更新课程请求
type UpdateClassRequest struct {
	Name       *string `json:"name"        binding:"omitempty,min=1,max=100"`
	Color      *string `json:"color"       binding:"omitempty,max=20"`
	IconName   *string `json:"icon_name"   binding:"omitempty,max=50"`
	IconPrefix *string `json:"icon_prefix" binding:"omitempty,max=10"`
}

// ClassResponse 课程信息响应
type ClassResponse struct {
	ID          string `json:"class_id"`
	TimetableID string `json:"timetable_id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	IconName    string `json:"icon_name"`
	IconPrefix  string `json:"icon_prefix"`
	ScopeYear   *int   `json:"scope_year,omitempty"`
	ScopeWeek   *int   `json:"scope_week,omitempty"`
}

// [自证通过] internal/dto/class.go
