package driver

import "time"

// Status captures the progress of one file.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	// StatusError covers load failures and fatal diagnostics.
	StatusError Status = "error"
)

// Event reports a file entering a phase or finishing. Stage is one of the
// observ phase names while working.
type Event struct {
	File    string
	Stage   string
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink receives progress events. OnEvent may be called from several
// goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
