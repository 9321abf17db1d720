// Package pool provides a small worker pool. lagrange.NewPowers uses it to
// build the rows of its cross-term matrix and to lift each row to G1; MSM and
// FFT in poly and kzg rely on gnark-crypto's own parallelism instead.
//
// A nil *Pool degrades to sequential execution, so a caller can hold a
// *Pool without special-casing the no-parallelism case.
package pool

import (
	"runtime"
)

// command tells an idle worker to compute f(i) and stash it at results[i].
type command struct {
	i       int
	f       func(int) interface{}
	results []interface{}
}

func worker(commands <-chan command, done chan<- struct{}) {
	for c := range commands {
		c.results[c.i] = c.f(c.i)
		done <- struct{}{}
	}
}

// Pool runs indexed work items across a fixed set of goroutines.
//
// It is a work-stealing pool: all workers read from the same commands
// channel, so slow items don't starve fast ones behind them.
type Pool struct {
	commands chan command
	done     chan struct{}
	workers  int
}

// New creates a Pool with the given number of workers. count <= 0 uses
// runtime.NumCPU().
func New(count int) *Pool {
	if count <= 0 {
		count = runtime.NumCPU()
	}
	p := &Pool{
		commands: make(chan command),
		done:     make(chan struct{}),
		workers:  count,
	}
	for i := 0; i < count; i++ {
		go worker(p.commands, p.done)
	}
	return p
}

// Close tears down the pool's goroutines. A closed pool must not be reused.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	close(p.commands)
}

// Map computes [f(0), ..., f(count-1)], running f concurrently across the
// pool's workers. A nil *Pool (or count <= 1) runs sequentially instead.
func (p *Pool) Map(count int, f func(int) interface{}) []interface{} {
	results := make([]interface{}, count)
	if p == nil || count <= 1 {
		for i := 0; i < count; i++ {
			results[i] = f(i)
		}
		return results
	}

	go func() {
		for i := 0; i < count; i++ {
			p.commands <- command{i: i, f: f, results: results}
		}
	}()
	for received := 0; received < count; received++ {
		<-p.done
	}
	return results
}
