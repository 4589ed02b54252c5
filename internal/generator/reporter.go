package generator

import "sync"

// EventKind classifies a generation event.
type EventKind int

const (
	// EventGeneratorStarted is emitted before a generator writes anything.
	EventGeneratorStarted EventKind = iota
	// EventFileWritten is emitted after each file is written.
	EventFileWritten
	// EventGeneratorFinished is emitted after a generator wrote all its files.
	EventGeneratorFinished
	// EventGeneratorFailed is emitted when a generator returns an error.
	EventGeneratorFailed
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventGeneratorStarted:
		return "started"
	case EventFileWritten:
		return "file_written"
	case EventGeneratorFinished:
		return "finished"
	case EventGeneratorFailed:
		return "failed"
	}
	return "unknown"
}

// Event describes one step of generation.
type Event struct {
	Kind      EventKind
	Generator string
	Path      string // root-relative path, set for EventFileWritten
	Err       error  // set for EventGeneratorFailed
}

// Reporter receives generation events. Implementations decide how (and
// whether) to present them.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Event)

// Report calls f(e).
func (f ReporterFunc) Report(e Event) { f(e) }

// NopReporter discards all events.
type NopReporter struct{}

// Report does nothing.
func (NopReporter) Report(Event) {}

// Recorder collects events in memory. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Report appends e to the recorded events.
func (r *Recorder) Report(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Files returns the paths of all EventFileWritten events in order.
func (r *Recorder) Files() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var files []string
	for _, e := range r.events {
		if e.Kind == EventFileWritten {
			files = append(files, e.Path)
		}
	}
	return files
}

// MultiReporter fans events out to several reporters.
func MultiReporter(reporters ...Reporter) Reporter {
	return ReporterFunc(func(e Event) {
		for _, r := range reporters {
			if r != nil {
				r.Report(e)
			}
		}
	})
}
