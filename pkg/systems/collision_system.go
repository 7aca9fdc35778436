package systems

import "github.com/decker502/collector/pkg/types"

// Boxed 拥有轴对齐包围盒的对象
type Boxed interface {
	Bounds() types.Rect
}

// Overlaps 检查两个 AABB（左上角 + 尺寸）是否重叠
//
// 四个比较全部使用严格不等号：仅共享一条边（相交面积为零）不算重叠，
// 零尺寸的包围盒永远不会与任何包围盒重叠。
//
// 参数:
//   - a, b: 两个包围盒
//
// 返回:
//   - bool: 相交面积大于零时返回 true
func Overlaps(a, b types.Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// EntitiesOverlap 对两个实体的包围盒执行 Overlaps
func EntitiesOverlap(a, b Boxed) bool {
	return Overlaps(a.Bounds(), b.Bounds())
}
