package bus

// EventBus is an in-process pub/sub bus for gameplay events.
//
// Delivery is synchronous, in the publisher's goroutine, and in subscription
// order, so a single-threaded simulation sees handlers run deterministically.
// Handler errors are joined and returned from Publish.
type EventBus interface {
	// Publish delivers the event to every active subscriber of its type and
	// to wildcard subscribers.
	Publish(event Event) error
	// PublishBatch publishes events in order and joins their errors.
	PublishBatch(events ...Event) error
	// PublishWithFilters drops the event silently if any filter rejects it.
	PublishWithFilters(event Event, filters ...EventFilter) error

	// Subscribe registers a handler for an event type. Wildcard subscribes
	// to every type.
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the subscription. Nil is ignored.
	Unsubscribe(Subscription) error

	AddObserver(obs EventBusObserver)
	RemoveObserver(obs EventBusObserver)
	// GetMetrics is only populated while an observer is registered.
	GetMetrics() EventBusMetrics
}

// Event is an immutable gameplay message.
type Event interface {
	Type() string
	Source() string
	// Tick is the simulation tick the event was raised on.
	Tick() int
	Data() any
}

type (
	EventHandler func(event Event) error
	EventFilter  func(event Event) bool
)

type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	// Cancel is safe to call more than once.
	Cancel() error
}

// EventBusObserver is notified around each delivery.
type EventBusObserver interface {
	OnPublish(eventType string, event Event)
	OnDelivered(eventType string, handlers int, err error)
}

type EventBusMetrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	DroppedByFilters  uint64
	SubscribersActive uint64
}
