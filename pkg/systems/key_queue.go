package systems

import "log"

// KeyEvent 一次按键按下或松开
type KeyEvent struct {
	Key  string // 按键标识，如 "w", "ArrowUp", "r"
	Down bool   // true 为按下，false 为松开
}

// DefaultKeyQueueSize 默认队列容量
const DefaultKeyQueueSize = 64

// KeyQueue 单生产者/单消费者的按键事件队列
//
// 输入线程（终端事件循环或宿主回调）调用 Push，帧循环在每帧开始时调用 Drain，
// 游戏状态只在帧循环中被修改。
type KeyQueue struct {
	events chan KeyEvent
}

// NewKeyQueue 创建指定容量的队列，size <= 0 时使用默认容量
func NewKeyQueue(size int) *KeyQueue {
	if size <= 0 {
		size = DefaultKeyQueueSize
	}
	return &KeyQueue{events: make(chan KeyEvent, size)}
}

// Push 入队一个事件，不阻塞
// 队列已满时丢弃事件并返回 false
func (q *KeyQueue) Push(ev KeyEvent) bool {
	select {
	case q.events <- ev:
		return true
	default:
		log.Printf("[KeyQueue] 队列已满，丢弃事件 %q down=%v", ev.Key, ev.Down)
		return false
	}
}

// Drain 按到达顺序处理当前所有排队事件
// 只处理调用时已入队的事件，处理期间新到的事件留给下一帧
func (q *KeyQueue) Drain(handle func(KeyEvent)) int {
	n := len(q.events)
	for i := 0; i < n; i++ {
		handle(<-q.events)
	}
	return n
}

// Len 当前排队的事件数
func (q *KeyQueue) Len() int {
	return len(q.events)
}
