package block

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/memalign/internal/budget"
)

// blockInfo describes one live aligned block.
type blockInfo struct {
	size      int
	alignment uintptr
	pin       any // backing array for heap-sourced blocks, nil otherwise
}

// tracker records every live block keyed by its aligned address.
//
// The map serves three purposes: it pins heap-backed memory between Alloc
// and Free, it carries the size and alignment the platform source needs on
// release, and it turns double or foreign frees into panics instead of
// silent corruption.
type tracker struct {
	live sync.Map // uintptr -> blockInfo

	outstandingBytes  atomic.Int64
	outstandingBlocks atomic.Int64
	totalAllocs       atomic.Int64
	totalFrees        atomic.Int64
	failedAllocs      atomic.Int64

	limiter atomic.Pointer[budget.Controller]
}

var blocks tracker

// acquire reserves size bytes against the budget, if one is set.
func (t *tracker) acquire(size int) bool {
	return t.limiter.Load().TryAcquire(int64(size))
}

// release returns size bytes to the budget, if one is set.
func (t *tracker) release(size int) {
	t.limiter.Load().Release(int64(size))
}

// add registers a freshly allocated block.
func (t *tracker) add(addr uintptr, info blockInfo) {
	if _, loaded := t.live.LoadOrStore(addr, info); loaded {
		// The platform source handed out an address that is still live.
		panic(fmt.Sprintf("memalign: block source returned live address %#x", addr))
	}

	t.outstandingBytes.Add(int64(info.size))
	t.outstandingBlocks.Add(1)
	t.totalAllocs.Add(1)
}

// remove unregisters a block about to be freed. The returned info keeps the
// pinned backing memory reachable until the caller is done with the block.
func (t *tracker) remove(addr uintptr) (blockInfo, bool) {
	v, ok := t.live.LoadAndDelete(addr)
	if !ok {
		return blockInfo{}, false
	}

	info := v.(blockInfo)
	t.outstandingBytes.Add(-int64(info.size))
	t.outstandingBlocks.Add(-1)
	t.totalFrees.Add(1)

	return info, true
}
