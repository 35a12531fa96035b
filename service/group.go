package service

import (
	"context"
	"sync"
)

// GroupTask is a unit of RunGroup. It must return when ctx is done.
type GroupTask func(ctx context.Context) error

// RunGroup runs every task in its own goroutine with a shared context.
// The returned channel yields the result of each task and is closed
// when all of them have returned.
func RunGroup(parent context.Context, tasks ...GroupTask) (_ <-chan error, cancel func()) {

	var (
		wg    sync.WaitGroup
		ctx   context.Context
		chErr = make(chan error, len(tasks))
	)

	ctx, cancel = context.WithCancel(parent)

	for _, task := range tasks {
		wg.Add(1)
		go func(fn GroupTask) {
			defer wg.Done()
			chErr <- fn(ctx)
		}(task)
	}

	go func() {
		wg.Wait()
		close(chErr)
	}()

	return chErr, cancel
}
