package dto

// ── 拖放仲裁 DTO ──

// PointerPosition 指针坐标
type PointerPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RegionRect 区域矩形
type RegionRect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// DraggableRegion 带类别标签的可拖放区域
type DraggableRegion struct {
	Kind  string     `json:"kind"   binding:"required,oneof=Slot ClassItem UnassignedArea"`
	Rect  RegionRect `json:"rect"   binding:"required"`
	RefID string     `json:"ref_id" binding:"required"`
}

// ResolveDropRequest 拖放目标仲裁请求
type ResolveDropRequest struct {
	Pointer PointerPosition   `json:"pointer" binding:"required"`
	Regions []DraggableRegion `json:"regions" binding:"required,dive"`
}

// ResolveDropResponse 仲裁结果；found 为 false 时该次拖拽为无操作
type ResolveDropResponse struct {
	Found    bool   `json:"found"`
	TargetID string `json:"target_id,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

// [自证通过] internal/dto/drag.go
