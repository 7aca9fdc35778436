package app

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/collector/pkg/systems"
)

// KeyID 将 Ebitengine 按键转换为游戏使用的按键标识
// 字母键为小写（"w"），其余沿用 Ebitengine 名称（"ArrowUp"、"Escape"）
func KeyID(key ebiten.Key) string {
	name := key.String()
	if len(name) == 1 {
		return strings.ToLower(name)
	}
	return name
}

// keyPump 每个 tick 收集刚按下/刚松开的按键并投递到队列
type keyPump struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

// pump 先投递松开再投递按下，保证同一 tick 内松开 A 按下 B 时 B 成为当前方向
func (k *keyPump) pump(queue *systems.KeyQueue) {
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	for _, key := range k.released {
		queue.Push(systems.KeyEvent{Key: KeyID(key), Down: false})
	}

	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	for _, key := range k.pressed {
		queue.Push(systems.KeyEvent{Key: KeyID(key), Down: true})
	}
}
