package event

import (
	"context"
	"log"
	"sync"
	"time"
)

// Event represents a single event flowing through the system.
type Event struct {
	Type      string
	Source    string
	Data      interface{}
	Timestamp time.Time
}

// Handler is an event handler function.
type Handler func(ctx context.Context, event Event) error

// Bus is an async event bus decoupling producers from consumers.
type Bus struct {
	handlers map[string][]Handler
	mu       sync.RWMutex

	eventChan chan Event
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

func NewBus(bufferSize int) *Bus {
	ctx, cancel := context.WithCancel(context.Background())

	bus := &Bus{
		handlers:  make(map[string][]Handler),
		eventChan: make(chan Event, bufferSize),
		ctx:       ctx,
		cancel:    cancel,
	}

	bus.wg.Add(1)
	go bus.processEvents()

	return bus
}

// Subscribe registers a handler for an event type.
func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.Printf("EventBus: Subscribed to event type: %s", eventType)
}

// Publish enqueues an event without blocking the caller. If the buffer
// is full the event is dropped.
func (b *Bus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case b.eventChan <- event:
	default:
		log.Printf("EventBus: Warning - event channel full, dropping event: %s", event.Type)
	}
}

// PublishSync dispatches an event immediately on the caller's goroutine.
func (b *Bus) PublishSync(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	return b.dispatch(ctx, event)
}

func (b *Bus) processEvents() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			if err := b.dispatch(b.ctx, event); err != nil {
				log.Printf("EventBus: Error processing event %s: %v", event.Type, err)
			}
		case <-b.ctx.Done():
			log.Println("EventBus: Shutting down event processor")
			return
		}
	}
}

func (b *Bus) dispatch(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		// No subscribers, which is fine.
		return nil
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(handlers))

	for _, handler := range handlers {
		wg.Add(1)
		go func(h Handler) {
			defer wg.Done()
			if err := h(ctx, event); err != nil {
				errChan <- err
			}
		}(handler)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			log.Printf("EventBus: Handler error for event %s: %v", event.Type, err)
		}
	}

	return nil
}

// Shutdown stops the event processor and waits for it to drain.
func (b *Bus) Shutdown() {
	log.Println("EventBus: Shutting down...")
	b.cancel()
	b.wg.Wait()
	close(b.eventChan)
	log.Println("EventBus: Shutdown complete")
}

// SubscriberCount reports how many handlers watch an event type (used
// for debugging).
func (b *Bus) SubscriberCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
