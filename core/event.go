package core

import (
	"context"
	"sync"
	"time"
)

// DefaultQueueSize bounds the event channel when no size is configured.
const DefaultQueueSize = 256

type Kind uint8

const (
	KindTick Kind = iota
	KindInput
	// KindRedraw asks for a fresh render (for example after a resize). No
	// window handler sees it.
	KindRedraw
)

func (k Kind) String() string {
	switch k {
	case KindTick:
		return "tick"
	case KindInput:
		return "input"
	case KindRedraw:
		return "redraw"
	default:
		return "unknown"
	}
}

// Event is one unit of work for the dispatcher. Input carries the decoded
// payload of an input event and is nil otherwise. Interval is the period a
// tick covers.
type Event struct {
	Kind     Kind
	Input    any
	Interval time.Duration
	At       time.Time
}

// Tick reports that interval has elapsed.
func Tick(interval time.Duration) Event {
	return Event{Kind: KindTick, Interval: interval, At: time.Now()}
}

func Input(payload any) Event { return Event{Kind: KindInput, Input: payload, At: time.Now()} }

func Redraw() Event { return Event{Kind: KindRedraw, At: time.Now()} }

// Publisher is the producer side of the event channel.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Source produces input events until its context ends. Input decoders
// implement it and are started by Manager.Run.
type Source interface {
	Run(ctx context.Context, out Publisher) error
}

// Channel is a bounded FIFO shared by many producers and read by the
// dispatcher. Publish blocks while the buffer is full, so a slow consumer
// builds a backlog instead of losing events.
type Channel struct {
	events chan Event
	done   chan struct{}
	once   sync.Once
}

func NewChannel(size int) *Channel {
	if size < 1 {
		size = DefaultQueueSize
	}
	return &Channel{
		events: make(chan Event, size),
		done:   make(chan struct{}),
	}
}

func (c *Channel) Publish(ctx context.Context, ev Event) error {
	// A closed channel wins over free buffer space.
	select {
	case <-c.done:
		return ErrChannelClosed
	default:
	}
	select {
	case c.events <- ev:
		return nil
	case <-c.done:
		return ErrChannelClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Recv blocks for the next event. After Close it reports ErrChannelClosed
// and buffered events are discarded.
func (c *Channel) Recv(ctx context.Context) (Event, error) {
	select {
	case <-c.done:
		return Event{}, ErrChannelClosed
	default:
	}
	select {
	case ev := <-c.events:
		return ev, nil
	case <-c.done:
		return Event{}, ErrChannelClosed
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

// Close marks the consumer side as gone. Pending and future publishes fail
// with ErrChannelClosed. Safe to call more than once.
func (c *Channel) Close() {
	c.once.Do(func() { close(c.done) })
}

func (c *Channel) Closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Len reports the number of buffered events.
func (c *Channel) Len() int {
	return len(c.events)
}

func (c *Channel) Cap() int {
	return cap(c.events)
}
