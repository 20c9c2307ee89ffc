package extension

import (
	"sync"

	"github.com/wha4up/flymd-ai-assistant/common/id"
)

// opGuard admits one assistant operation at a time. Overlapping actions
// against the same editor buffer would race on reads and writes, so a
// second trigger while one is in flight is rejected up front.
type opGuard struct {
	mu     sync.Mutex
	active bool
}

// tryAcquire claims the guard and returns a fresh operation ID, or
// ok=false when an operation is already in flight.
func (g *opGuard) tryAcquire() (int64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active {
		return 0, false
	}
	g.active = true
	return id.New(), true
}

func (g *opGuard) release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = false
}
