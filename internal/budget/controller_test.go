package budget

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestController_Limit(t *testing.T) {
	c := NewController(100)
	assert.Equal(t, int64(100), c.Limit())

	// Acquire 50
	assert.True(t, c.TryAcquire(50))
	assert.Equal(t, int64(50), c.Used())

	// Acquire 40
	assert.True(t, c.TryAcquire(40))
	assert.Equal(t, int64(90), c.Used())

	// TryAcquire 20 (should fail)
	assert.False(t, c.TryAcquire(20))
	assert.Equal(t, int64(90), c.Used())

	// Release 50, then 20 fits again
	c.Release(50)
	assert.Equal(t, int64(40), c.Used())
	assert.True(t, c.TryAcquire(20))
	assert.Equal(t, int64(60), c.Used())
}

func TestController_Unlimited(t *testing.T) {
	c := NewController(0)
	assert.Equal(t, int64(0), c.Limit())

	assert.True(t, c.TryAcquire(1 << 40))
	assert.Equal(t, int64(1<<40), c.Used())

	c.Release(1 << 40)
	assert.Equal(t, int64(0), c.Used())
}

func TestController_OverCapacityRequest(t *testing.T) {
	c := NewController(64)

	// A single request larger than the whole budget can never succeed.
	assert.False(t, c.TryAcquire(65))
	assert.Equal(t, int64(0), c.Used())
}

func TestController_NilSafe(t *testing.T) {
	var c *Controller

	assert.True(t, c.TryAcquire(10))
	c.Release(10)
	assert.Equal(t, int64(0), c.Used())
	assert.Equal(t, int64(0), c.Limit())
}

func TestController_ZeroAndNegativeBytes(t *testing.T) {
	c := NewController(10)

	assert.True(t, c.TryAcquire(0))
	assert.True(t, c.TryAcquire(-5))
	assert.Equal(t, int64(0), c.Used())

	c.Release(0)
	c.Release(-5)
	assert.Equal(t, int64(0), c.Used())
}

func TestController_Concurrent(t *testing.T) {
	const (
		workers = 8
		rounds  = 200
		chunk   = 16
	)

	c := NewController(workers * chunk)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				if c.TryAcquire(chunk) {
					c.Release(chunk)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(0), c.Used())
}
