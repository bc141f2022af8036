package purge

import "sync"

// scheduler owns the running purge loops, one cancellable handle per
// discord channel. All map access goes through the mutex so add/replace/
// cancel are atomic.
type scheduler struct {
	sync.Mutex

	tasks map[string]chan struct{}
}

func newScheduler() *scheduler {
	return &scheduler{
		tasks: make(map[string]chan struct{}),
	}
}

// Add starts $run in its own goroutine, handing it a stop channel.
// A loop already registered for the channel is cancelled first, so
// reconfiguring never leaves two loops racing on one channel.
func (s *scheduler) Add(channelID string, run func(stop <-chan struct{})) {
	s.Lock()
	defer s.Unlock()

	if stop, ok := s.tasks[channelID]; ok {
		close(stop)
	}

	stop := make(chan struct{})
	s.tasks[channelID] = stop

	go run(stop)
}

// Cancel stops the loop for $channelID, reporting whether one was running
func (s *scheduler) Cancel(channelID string) bool {
	s.Lock()
	defer s.Unlock()

	stop, ok := s.tasks[channelID]
	if !ok {
		return false
	}

	close(stop)
	delete(s.tasks, channelID)

	return true
}

// CancelAll stops every running loop
func (s *scheduler) CancelAll() {
	s.Lock()
	defer s.Unlock()

	for channelID, stop := range s.tasks {
		close(stop)
		delete(s.tasks, channelID)
	}
}

// Running reports whether a loop is registered for $channelID
func (s *scheduler) Running(channelID string) bool {
	s.Lock()
	defer s.Unlock()

	_, ok := s.tasks[channelID]
	return ok
}

// remove drops a handle without closing it, called by a loop that ends
// on its own so a stale entry doesn't shadow the next Add
func (s *scheduler) remove(channelID string, stop <-chan struct{}) {
	s.Lock()
	defer s.Unlock()

	if current, ok := s.tasks[channelID]; ok && current == stop {
		delete(s.tasks, channelID)
	}
}
