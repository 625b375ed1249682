package notify

import (
	"log"
	"time"
)

type Event string

const (
	EventSubmissionCreated   Event = "submission.created"
	EventSubmissionSubmitted Event = "submission.submitted"
	EventSubmissionApproved  Event = "submission.approved"
	EventSubmissionRejected  Event = "submission.rejected"
)

// Notifier accepts events without blocking the caller. Delivery failures are
// logged and never returned.
type Notifier interface {
	Notify(event Event, payload any)
}

// Envelope is what sinks receive.
type Envelope struct {
	Event   Event     `json:"event"`
	Payload any       `json:"payload"`
	SentAt  time.Time `json:"sent_at"`
}

type Sink interface {
	Name() string
	Deliver(env Envelope) error
}

// Dispatcher fans every event out to its sinks, each on its own goroutine.
type Dispatcher struct {
	sinks  []Sink
	onFail func(sink string)
}

func NewDispatcher(sinks ...Sink) *Dispatcher {
	return &Dispatcher{sinks: sinks}
}

// OnFailure registers a hook called with the sink name after a failed
// delivery.
func (d *Dispatcher) OnFailure(fn func(sink string)) {
	d.onFail = fn
}

func (d *Dispatcher) Notify(event Event, payload any) {
	env := Envelope{Event: event, Payload: payload, SentAt: time.Now()}
	for _, s := range d.sinks {
		go d.deliver(s, env)
	}
}

func (d *Dispatcher) deliver(s Sink, env Envelope) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[notify] %s panicked on %s: %v", s.Name(), env.Event, r)
			d.failed(s.Name())
		}
	}()
	if err := s.Deliver(env); err != nil {
		log.Printf("[notify] %s failed on %s: %v", s.Name(), env.Event, err)
		d.failed(s.Name())
	}
}

func (d *Dispatcher) failed(sink string) {
	if d.onFail != nil {
		d.onFail(sink)
	}
}

// Nop drops every event.
type Nop struct{}

func (Nop) Notify(Event, any) {}
