// Package progress fans pipeline lifecycle events out to stream subscribers.
// Each job gets one ordered event sequence: zero or more stage events, then
// exactly one terminal complete or error event, after which the stream closes.
package progress

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/biomarkerlab/labreports/constants"
)

const (
	EventStage    = "stage"
	EventComplete = "complete"
	EventError    = "error"
)

// Event is one NDJSON object on the wire.
type Event struct {
	Type  string `json:"type"`
	Stage string `json:"stage,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

const subscriberBuffer = 64

// Broker tracks the active streams. Streams exist only while a run is active;
// they are not restartable.
type Broker struct {
	mu      sync.Mutex
	streams map[uuid.UUID]*stream
	log     *slog.Logger
}

type stream struct {
	subs   []chan Event
	closed bool
}

func NewBroker(logger *slog.Logger) *Broker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broker{streams: make(map[uuid.UUID]*stream), log: logger}
}

// Open registers a stream for a starting run. Subscribers may attach before or
// after Open as long as the run has not reached its terminal event.
func (b *Broker) Open(jobID uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.streams[jobID]; !ok {
		b.streams[jobID] = &stream{}
	}
}

// Subscribe attaches to a job's stream. ok is false when no run is active
// (never started, or already terminal).
func (b *Broker) Subscribe(jobID uuid.UUID) (<-chan Event, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, found := b.streams[jobID]
	if !found || s.closed {
		return nil, false
	}
	ch := make(chan Event, subscriberBuffer)
	s.subs = append(s.subs, ch)
	return ch, true
}

// Stage publishes a stage-transition event.
func (b *Broker) Stage(jobID uuid.UUID, stage constants.JobStage) {
	b.publish(jobID, Event{Type: EventStage, Stage: string(stage)}, false)
}

// Complete publishes the terminal success event and closes the stream.
func (b *Broker) Complete(jobID uuid.UUID, data any) {
	b.publish(jobID, Event{Type: EventComplete, Data: data}, true)
}

// Error publishes the terminal failure event and closes the stream.
func (b *Broker) Error(jobID uuid.UUID, message string) {
	b.publish(jobID, Event{Type: EventError, Error: message}, true)
}

func (b *Broker) publish(jobID uuid.UUID, ev Event, terminal bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, found := b.streams[jobID]
	if !found || s.closed {
		return
	}
	for _, ch := range s.subs {
		if terminal {
			// the terminal event must arrive; shed the oldest buffered
			// events if a slow consumer filled its buffer
			for {
				select {
				case ch <- ev:
				default:
					select {
					case <-ch:
					default:
					}
					continue
				}
				break
			}
			continue
		}
		select {
		case ch <- ev:
		default:
			b.log.Warn("progress event dropped", "job_id", jobID, "event", ev.Type)
		}
	}
	if terminal {
		for _, ch := range s.subs {
			close(ch)
		}
		s.closed = true
		delete(b.streams, jobID)
	}
}
