package events

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// EventBus is a synchronous event bus. Subscribers run in registration order.
type EventBus struct {
	subscribers  map[string]Subscriber
	order        []string
	funcHandlers map[string][]EventHandler
	mu           sync.RWMutex
	logger       zerolog.Logger
}

var _ Bus = (*EventBus)(nil)

// NewEventBus creates a new event bus instance
func NewEventBus(logger zerolog.Logger) *EventBus {
	return &EventBus{
		subscribers:  make(map[string]Subscriber),
		funcHandlers: make(map[string][]EventHandler),
		logger:       logger.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds a subscriber, replacing any existing one with the same ID
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	id := subscriber.ID()
	if _, exists := eb.subscribers[id]; !exists {
		eb.order = append(eb.order, id)
	}
	eb.subscribers[id] = subscriber
	eb.logger.Debug().
		Str("subscriber_id", id).
		Msg("Subscriber added to event bus")
}

// Unsubscribe removes a subscriber from the event bus
func (eb *EventBus) Unsubscribe(subscriberID string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if _, exists := eb.subscribers[subscriberID]; !exists {
		return
	}
	delete(eb.subscribers, subscriberID)
	for i, id := range eb.order {
		if id == subscriberID {
			eb.order = append(eb.order[:i], eb.order[i+1:]...)
			break
		}
	}
	eb.logger.Debug().
		Str("subscriber_id", subscriberID).
		Msg("Subscriber removed from event bus")
}

// SubscribeFunc adds a function handler for a specific event type
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) string {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.funcHandlers[eventType] = append(eb.funcHandlers[eventType], handler)

	handlerID := fmt.Sprintf("%s_func_%d", eventType, len(eb.funcHandlers[eventType]))
	eb.logger.Debug().
		Str("event_type", eventType).
		Str("handler_id", handlerID).
		Msg("Function handler added to event bus")

	return handlerID
}

// Publish sends an event to all interested subscribers synchronously
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	eventType := event.Type()

	eb.logger.Debug().
		Str("event_type", eventType).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Msg("Publishing event")

	for _, id := range eb.order {
		subscriber := eb.subscribers[id]
		if !subscriber.InterestedIn(eventType) {
			continue
		}
		// Catch panics so one subscriber cannot break the others
		func() {
			defer func() {
				if r := recover(); r != nil {
					eb.logger.Error().
						Str("subscriber_id", id).
						Str("event_type", eventType).
						Interface("panic", r).
						Msg("Subscriber panicked while handling event")
				}
			}()
			subscriber.HandleEvent(event)
		}()
	}

	for i, handler := range eb.funcHandlers[eventType] {
		func() {
			defer func() {
				if r := recover(); r != nil {
					eb.logger.Error().
						Str("event_type", eventType).
						Int("handler_index", i).
						Interface("panic", r).
						Msg("Function handler panicked while handling event")
				}
			}()
			handler(event)
		}()
	}
}

// SubscriberIDs returns the registered subscriber IDs, sorted
func (eb *EventBus) SubscriberIDs() []string {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	ids := make([]string, 0, len(eb.subscribers))
	for id := range eb.subscribers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GetFuncHandlerCount returns the number of function handlers for a specific event type
func (eb *EventBus) GetFuncHandlerCount(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.funcHandlers[eventType])
}
