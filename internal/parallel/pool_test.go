package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	expected := runtime.GOMAXPROCS(0)

	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if pool.Workers() != expected {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, pool.Workers(), expected)
		}
		pool.Close()
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	numTasks := 100

	tasks := make([]func(), numTasks)
	for i := range tasks {
		tasks[i] = func() {
			counter.Add(1)
		}
	}

	pool.ExecuteAll(tasks)

	if counter.Load() != int64(numTasks) {
		t.Errorf("counter = %d, want %d", counter.Load(), numTasks)
	}
}

func TestWorkerPool_ExecuteAll_AllTasksRun(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var mu sync.Mutex
	seen := make(map[int]bool)

	tasks := make([]func(), 20)
	for i := range tasks {
		idx := i
		tasks[i] = func() {
			mu.Lock()
			seen[idx] = true
			mu.Unlock()
		}
	}

	pool.ExecuteAll(tasks)

	for i := 0; i < 20; i++ {
		if !seen[i] {
			t.Errorf("task %d never ran", i)
		}
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Should not panic or block.
	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
}

func TestWorkerPool_ExecuteAll_AfterClose(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Close()

	var counter atomic.Int64

	// A closed pool still runs the batch, inline on this goroutine.
	pool.ExecuteAll([]func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	})

	if counter.Load() != 3 {
		t.Errorf("counter = %d, want 3 (tasks should run inline after Close)", counter.Load())
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(4)

	// Multiple closes should not panic.
	pool.Close()
	pool.Close()
	pool.Close()
}

func TestWorkerPool_Concurrent(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	numGoroutines := 10
	numTasksPerGoroutine := 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for g := 0; g < numGoroutines; g++ {
		go func() {
			defer wg.Done()

			tasks := make([]func(), numTasksPerGoroutine)
			for i := range tasks {
				tasks[i] = func() {
					counter.Add(1)
				}
			}

			pool.ExecuteAll(tasks)
		}()
	}

	wg.Wait()

	expected := int64(numGoroutines * numTasksPerGoroutine)
	if counter.Load() != expected {
		t.Errorf("counter = %d, want %d", counter.Load(), expected)
	}
}

func TestWorkerPool_UnevenLoad(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Mix slow and fast tasks the way a batch mixes large and small
	// frames. Stealing should still run every one of them.
	var fastCount, slowCount atomic.Int64

	tasks := make([]func(), 100)
	for i := range tasks {
		if i%10 == 0 {
			tasks[i] = func() {
				time.Sleep(10 * time.Millisecond)
				slowCount.Add(1)
			}
		} else {
			tasks[i] = func() {
				fastCount.Add(1)
			}
		}
	}

	pool.ExecuteAll(tasks)

	if slowCount.Load() != 10 {
		t.Errorf("slowCount = %d, want 10", slowCount.Load())
	}
	if fastCount.Load() != 90 {
		t.Errorf("fastCount = %d, want 90", fastCount.Load())
	}
}

func TestWorkerPool_SingleWorker(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	var counter atomic.Int64

	tasks := make([]func(), 50)
	for i := range tasks {
		tasks[i] = func() {
			counter.Add(1)
		}
	}

	pool.ExecuteAll(tasks)

	if counter.Load() != 50 {
		t.Errorf("counter = %d, want 50", counter.Load())
	}
}

func TestWorkerPool_NoGoroutineLeak(t *testing.T) {
	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	baseline := runtime.NumGoroutine()

	for i := 0; i < 5; i++ {
		pool := NewWorkerPool(4)

		tasks := make([]func(), 100)
		for j := range tasks {
			tasks[j] = func() {}
		}
		pool.ExecuteAll(tasks)

		pool.Close()
	}

	runtime.GC()
	time.Sleep(100 * time.Millisecond)

	final := runtime.NumGoroutine()

	// Allow for some variance from test framework goroutines.
	if final > baseline+2 {
		t.Errorf("goroutine count: baseline=%d, final=%d (leak detected)", baseline, final)
	}
}

func BenchmarkWorkerPool_ExecuteAll(b *testing.B) {
	pool := NewWorkerPool(runtime.GOMAXPROCS(0))
	defer pool.Close()

	tasks := make([]func(), 100)
	for i := range tasks {
		tasks[i] = func() {
			sum := 0
			for j := 0; j < 1000; j++ {
				sum += j
			}
			_ = sum
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		pool.ExecuteAll(tasks)
	}
}
