package entities

// Collectible 静态收集物
// 位置在生成后不再改变；Collected 只会从 false 变为 true，直到整局重置
type Collectible struct {
	Entity

	Collected bool
}

// Update 未被收集时推进动画，已收集的收集物冻结
func (c *Collectible) Update(deltaTime float64) {
	if c.Collected || deltaTime <= 0 {
		return
	}
	c.Animation.Advance(deltaTime)
}

// Collect 标记为已收集
// 返回 false 表示之前已经被收集过
func (c *Collectible) Collect() bool {
	if c.Collected {
		return false
	}
	c.Collected = true
	return true
}
