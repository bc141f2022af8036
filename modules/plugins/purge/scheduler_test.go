package purge

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerCancelStopsLoop(t *testing.T) {
	s := newScheduler()

	var stopped int32
	s.Add("chan1", func(stop <-chan struct{}) {
		<-stop
		atomic.StoreInt32(&stopped, 1)
	})

	if !s.Running("chan1") {
		t.Fatal("loop should be registered after Add")
	}

	if !s.Cancel("chan1") {
		t.Fatal("Cancel should report a running loop")
	}

	deadline := time.Now().Add(time.Second)
	for atomic.LoadInt32(&stopped) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("loop did not observe cancellation")
		}
		time.Sleep(time.Millisecond)
	}

	if s.Running("chan1") {
		t.Fatal("no handle should remain after Cancel")
	}
	if s.Cancel("chan1") {
		t.Fatal("second Cancel should report nothing running")
	}
}

func TestSchedulerAddReplaces(t *testing.T) {
	s := newScheduler()

	firstStopped := make(chan struct{})
	s.Add("chan1", func(stop <-chan struct{}) {
		<-stop
		close(firstStopped)
	})

	second := make(chan struct{})
	s.Add("chan1", func(stop <-chan struct{}) {
		<-stop
		close(second)
	})

	select {
	case <-firstStopped:
	case <-time.After(time.Second):
		t.Fatal("replacing a loop must cancel the old one")
	}

	select {
	case <-second:
		t.Fatal("the replacement loop must keep running")
	default:
	}

	s.CancelAll()

	select {
	case <-second:
	case <-time.After(time.Second):
		t.Fatal("CancelAll must stop the replacement loop")
	}
}

func TestSchedulerRemoveOnlyDropsOwnHandle(t *testing.T) {
	s := newScheduler()

	s.Add("chan1", func(stop <-chan struct{}) {
		<-stop
	})

	s.Lock()
	first := s.tasks["chan1"]
	s.Unlock()

	// replace, then the old loop's self-removal must not drop the new handle
	s.Add("chan1", func(stop <-chan struct{}) {
		<-stop
	})
	s.remove("chan1", first)

	if !s.Running("chan1") {
		t.Fatal("stale self-removal dropped the active handle")
	}

	s.CancelAll()
}
