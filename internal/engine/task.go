package engine

// Task is a unit of cooperative work resumed once per frame, the engine's
// stand-in for a coroutine. Step advances it by dt seconds and reports
// whether it has finished.
type Task interface {
	Step(dt float32) bool
}

// TaskFunc adapts a plain function to Task.
type TaskFunc func(dt float32) bool

func (f TaskFunc) Step(dt float32) bool { return f(dt) }

// TaskSlot runs at most one task at a time. Starting a task replaces the
// running one; the replaced task is dropped without being stepped again.
type TaskSlot struct {
	task Task
	gen  uint64
}

// Start installs t as the running task, cancelling any previous one.
func (s *TaskSlot) Start(t Task) {
	s.gen++
	s.task = t
}

// Stop cancels the running task, if any.
func (s *TaskSlot) Stop() {
	s.gen++
	s.task = nil
}

// Running reports whether a task is installed.
func (s *TaskSlot) Running() bool {
	return s.task != nil
}

// Update steps the running task. A task that finishes is removed unless it
// started a replacement from inside its own Step.
func (s *TaskSlot) Update(dt float32) {
	if s.task == nil {
		return
	}
	gen := s.gen
	if s.task.Step(dt) && s.gen == gen {
		s.task = nil
	}
}

type waitTask struct {
	remaining float32
	done      func()
}

// Wait returns a task that calls done once seconds of frame time have passed.
func Wait(seconds float32, done func()) Task {
	return &waitTask{remaining: seconds, done: done}
}

func (w *waitTask) Step(dt float32) bool {
	w.remaining -= dt
	if w.remaining > 0 {
		return false
	}
	if w.done != nil {
		w.done()
	}
	return true
}

type thenTask struct {
	task Task
	done func()
}

// Then returns a task that runs t and calls done in the frame t finishes.
func Then(t Task, done func()) Task {
	return &thenTask{task: t, done: done}
}

func (t *thenTask) Step(dt float32) bool {
	if !t.task.Step(dt) {
		return false
	}
	if t.done != nil {
		t.done()
	}
	return true
}
