package queue_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shashiranjanraj/bistro/pkg/queue"
)

var (
	echoCalls atomic.Int32
	failCalls atomic.Int32
)

type echoJob struct {
	Val string
}

func (j echoJob) Handle() error {
	echoCalls.Add(1)
	return nil
}

type failJob struct{}

func (j failJob) Handle() error {
	failCalls.Add(1)
	return errors.New("always fails")
}

func init() {
	queue.Register("queue_test.echoJob", func() queue.Job { return &echoJob{} })
	queue.Register("queue_test.failJob", func() queue.Job { return &failJob{} })
	queue.StartWorkers(context.Background(), 2)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestDispatchAndProcess(t *testing.T) {
	before := echoCalls.Load()
	if err := queue.Dispatch(echoJob{Val: "hello"}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	waitFor(t, func() bool { return echoCalls.Load() == before+1 })
}

// A failing job runs exactly once. There is no retry: the failure is logged
// and the job dropped.
func TestFailedJobNotRetried(t *testing.T) {
	before := failCalls.Load()
	if err := queue.Dispatch(failJob{}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	waitFor(t, func() bool { return failCalls.Load() == before+1 })

	// Give a retry loop, if one existed, time to show itself.
	time.Sleep(300 * time.Millisecond)
	if got := failCalls.Load(); got != before+1 {
		t.Errorf("failed job ran %d times, want exactly 1", got-before)
	}
}

func TestUnregisteredJobDropped(t *testing.T) {
	type strayJob struct{ queue.Job }

	before := echoCalls.Load() + failCalls.Load()
	if err := queue.Dispatch(strayJob{}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	time.Sleep(300 * time.Millisecond)
	if got := echoCalls.Load() + failCalls.Load(); got != before {
		t.Error("unregistered job should not have reached a handler")
	}
}
