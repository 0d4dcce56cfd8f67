package watcher_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fergus/internal/adapters/watcher"
)

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/theme/index.haml")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/theme/index.haml"}, receivedPaths)
	})
}

func TestDebouncer_Add_CoalescesAndSorts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/theme/b.haml")
		d.Add("/theme/a.haml")
		d.Add("/theme/b.haml")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/theme/a.haml", "/theme/b.haml"}, receivedPaths)
	})
}

func TestDebouncer_Add_ResetsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			callCount++
		})

		d.Add("/theme/a.haml")
		time.Sleep(60 * time.Millisecond)
		d.Add("/theme/b.haml")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 0, callCount, "window restarts on every add")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var batches [][]string

		d := watcher.NewDebouncer(time.Second, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			batches = append(batches, paths)
		})

		d.Add("/theme/index.haml")
		d.Flush()

		mu.Lock()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/theme/index.haml"}, batches[0])
		mu.Unlock()

		time.Sleep(2 * time.Second)
		synctest.Wait()

		mu.Lock()
		assert.Len(t, batches, 1, "flushed paths are not delivered twice")
		mu.Unlock()
	})
}

func TestDebouncer_Flush_WaitsForInFlightBatch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var done atomic.Bool

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			time.Sleep(time.Second)
			done.Store(true)
		})

		d.Add("/theme/index.haml")
		time.Sleep(150 * time.Millisecond)

		d.Flush()
		assert.True(t, done.Load(), "Flush returned while a batch was still compiling")
	})
}

func TestDebouncer_Add_AfterFireStartsNewBatch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var batches [][]string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			batches = append(batches, paths)
		})

		d.Add("/theme/a.haml")
		time.Sleep(150 * time.Millisecond)
		d.Add("/theme/b.haml")
		d.Flush()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, [][]string{{"/theme/a.haml"}, {"/theme/b.haml"}}, batches)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/theme/index.haml")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
