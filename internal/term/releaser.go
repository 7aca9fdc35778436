package term

import (
	"slices"
	"time"

	"github.com/decker502/collector/pkg/systems"
)

const (
	// DefaultRepeatDelay 首次按下后等待终端开始自动重复的时间
	// 常见终端的重复延迟在 250~600ms 之间
	DefaultRepeatDelay = 600 * time.Millisecond

	// DefaultReleaseAfter 自动重复开始后，超过该时间没有再次按下视为松开
	DefaultReleaseAfter = 150 * time.Millisecond
)

// heldKey 按住中的按键
type heldKey struct {
	last     time.Time
	repeated bool // 已收到过自动重复
}

// Releaser 把终端的"按下"序列转换为按下/松开事件对
//
// 终端不报告松开事件。第一次按下投递 Down；终端自动重复只刷新时间戳，不再投递。
// 尚未收到自动重复时按 repeatDelay 判定松开，之后按 releaseAfter 判定。
type Releaser struct {
	queue        *systems.KeyQueue
	repeatDelay  time.Duration
	releaseAfter time.Duration
	held         map[string]heldKey
}

// NewReleaser 创建按键释放合成器
//
// 参数:
//   - repeatDelay: 首次按下后的松开超时，<= 0 时使用 DefaultRepeatDelay
//   - releaseAfter: 自动重复期间的松开超时，<= 0 时使用 DefaultReleaseAfter
//
// repeatDelay 不会小于 releaseAfter。
func NewReleaser(queue *systems.KeyQueue, repeatDelay, releaseAfter time.Duration) *Releaser {
	if releaseAfter <= 0 {
		releaseAfter = DefaultReleaseAfter
	}
	if repeatDelay <= 0 {
		repeatDelay = DefaultRepeatDelay
	}
	repeatDelay = max(repeatDelay, releaseAfter)

	return &Releaser{
		queue:        queue,
		repeatDelay:  repeatDelay,
		releaseAfter: releaseAfter,
		held:         make(map[string]heldKey),
	}
}

// Press 记录一次按下
func (r *Releaser) Press(key string, now time.Time) {
	if _, ok := r.held[key]; !ok {
		r.queue.Push(systems.KeyEvent{Key: key, Down: true})
		r.held[key] = heldKey{last: now}
		return
	}
	r.held[key] = heldKey{last: now, repeated: true}
}

// Expire 为超时的按键投递松开事件（按键名排序，保证顺序确定）
// 返回本次松开的按键数
func (r *Releaser) Expire(now time.Time) int {
	var expired []string
	for key, hk := range r.held {
		timeout := r.repeatDelay
		if hk.repeated {
			timeout = r.releaseAfter
		}
		if now.Sub(hk.last) >= timeout {
			expired = append(expired, key)
		}
	}
	slices.Sort(expired)

	for _, key := range expired {
		delete(r.held, key)
		r.queue.Push(systems.KeyEvent{Key: key, Down: false})
	}
	return len(expired)
}

// Held 是否认为按键仍被按住
func (r *Releaser) Held(key string) bool {
	_, ok := r.held[key]
	return ok
}
