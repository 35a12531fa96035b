package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {

	q := newQueue()
	require.Equal(t, 0, q.len())

	for i := 0; i < 3; i++ {
		num := i
		require.NoError(t, q.push(TaskFunc(func() { _ = num })))
	}
	require.Equal(t, 3, q.len())

	for i := 0; i < 3; i++ {
		task, ok := q.pop()
		require.True(t, ok)
		require.NotNil(t, task)
	}
	require.Equal(t, 0, q.len())

	require.True(t, q.close())
	require.False(t, q.close())
	require.True(t, q.isClosed())
	require.Equal(t, ErrClosed, q.push(TaskFunc(func() {})))

	task, ok := q.pop()
	require.False(t, ok)
	require.Nil(t, task)
}

func TestQueueOrder(t *testing.T) {

	q := newQueue()

	results := make([]int, 0)
	for i := 0; i < 5; i++ {
		num := i
		require.NoError(t, q.push(TaskFunc(func() { results = append(results, num) })))
	}
	q.close()

	// test: closed queue still returns the queued items
	for {
		task, ok := q.pop()
		if !ok {
			break
		}
		task.Invoke()
	}

	require.Equal(t, []int{0, 1, 2, 3, 4}, results)
}

func TestQueuePopBlocks(t *testing.T) {

	q := newQueue()

	got := make(chan bool)
	go func() {
		_, ok := q.pop()
		got <- ok
	}()

	select {
	case <-got:
		t.Fatal("pop returned from empty queue")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, q.push(TaskFunc(func() {})))
	select {
	case ok := <-got:
		require.True(t, ok)
	case <-time.After(waitTimeout):
		t.Fatal("timeout")
	}

	// test: close wakes up waiting consumers
	go func() {
		_, ok := q.pop()
		got <- ok
	}()

	time.Sleep(10 * time.Millisecond)
	q.close()

	select {
	case ok := <-got:
		require.False(t, ok)
	case <-time.After(waitTimeout):
		t.Fatal("timeout")
	}
}
