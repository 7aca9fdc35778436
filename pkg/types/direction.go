package types

// Direction 玩家朝向/移动方向
type Direction int

const (
	// DirectionNone 无方向（未按下任何方向键）
	DirectionNone Direction = iota
	// DirectionUp 向上
	DirectionUp
	// DirectionLeft 向左
	DirectionLeft
	// DirectionDown 向下
	DirectionDown
	// DirectionRight 向右
	DirectionRight
)

// String 返回方向的字符串表示
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionLeft:
		return "left"
	case DirectionDown:
		return "down"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection 将配置文件中的字符串解析为 Direction
// 无法识别时返回 DirectionNone 和 false
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return DirectionUp, true
	case "left":
		return DirectionLeft, true
	case "down":
		return DirectionDown, true
	case "right":
		return DirectionRight, true
	default:
		return DirectionNone, false
	}
}

// Unit 返回该方向的单位向量（屏幕坐标，Y 轴向下）
func (d Direction) Unit() Vector {
	switch d {
	case DirectionUp:
		return Vector{X: 0, Y: -1}
	case DirectionLeft:
		return Vector{X: -1, Y: 0}
	case DirectionDown:
		return Vector{X: 0, Y: 1}
	case DirectionRight:
		return Vector{X: 1, Y: 0}
	default:
		return Zero
	}
}
