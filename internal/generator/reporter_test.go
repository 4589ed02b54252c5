package generator

import "testing"

func TestEventKindString(t *testing.T) {
	tests := map[EventKind]string{
		EventGeneratorStarted:  "started",
		EventFileWritten:       "file_written",
		EventGeneratorFinished: "finished",
		EventGeneratorFailed:   "failed",
		EventKind(99):          "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestMultiReporter(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	rep := MultiReporter(a, nil, b)

	rep.Report(Event{Kind: EventFileWritten, Generator: NameMUI, Path: "theme/palette.ts"})

	if len(a.Files()) != 1 || len(b.Files()) != 1 {
		t.Errorf("expected both recorders to receive the event: %v %v", a.Events(), b.Events())
	}
}

func TestRecorderEventsIsCopy(t *testing.T) {
	rec := &Recorder{}
	rec.Report(Event{Kind: EventGeneratorStarted, Generator: NameSCSS})

	events := rec.Events()
	events[0].Generator = "mutated"

	if rec.Events()[0].Generator != NameSCSS {
		t.Error("Events() should return a copy")
	}
}
