// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Vector 表示二维坐标或速度
// 值类型，所有运算都返回新值，不修改接收者
type Vector struct {
	X float64
	Y float64
}

// Zero 零向量
var Zero = Vector{}

// Plus 返回 v + o
func (v Vector) Plus(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Times 返回 v 按标量缩放后的结果
func (v Vector) Times(scalar float64) Vector {
	return Vector{X: v.X * scalar, Y: v.Y * scalar}
}

// IsZero 判断是否为零向量
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect 轴对齐矩形（左上角 + 尺寸）
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAt 以位置和尺寸构造矩形
func RectAt(pos Vector, w, h float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: w, H: h}
}

// Right 返回右边界
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom 返回下边界
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Empty 面积为零（或负尺寸）的矩形
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
