package domain

// EventType represents the type of pager event
type EventType string

// Event types
const (
	EventViewChange  EventType = "viewChange"
	EventHydrated    EventType = "hydrated"
	EventScroll      EventType = "scroll"
	EventSwipeStart  EventType = "swipeStart"
	EventSwipeMove   EventType = "swipeMove"
	EventSwipeEnd    EventType = "swipeEnd"
	EventViewAdded   EventType = "viewAdded"
	EventViewRemoved EventType = "viewRemoved"
)

// EventTypes lists every event a pager can publish
var EventTypes = []EventType{
	EventViewChange,
	EventHydrated,
	EventScroll,
	EventSwipeStart,
	EventSwipeMove,
	EventSwipeEnd,
	EventViewAdded,
	EventViewRemoved,
}

// Known reports whether t belongs to the enumerated event set
func (t EventType) Known() bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// DomainEvent is the interface for all pager events
type DomainEvent interface {
	Type() EventType
}

// ViewChangeEvent is emitted when the current view or the visible window changes
type ViewChangeEvent struct {
	Indices []int // visible view indices, in order
}

func (e ViewChangeEvent) Type() EventType { return EventViewChange }

// HydratedEvent is emitted after every element has been re-measured
type HydratedEvent struct{}

func (e HydratedEvent) Type() EventType { return EventHydrated }

// ScrollEvent is emitted whenever a track position is resolved for display
type ScrollEvent struct {
	Progress float64
	Position float64
}

func (e ScrollEvent) Type() EventType { return EventScroll }

// SwipeStartEvent is emitted when a drag gesture begins
type SwipeStartEvent struct{}

func (e SwipeStartEvent) Type() EventType { return EventSwipeStart }

// SwipeMoveEvent is emitted when a drag gesture moves the track
type SwipeMoveEvent struct {
	Position float64
}

func (e SwipeMoveEvent) Type() EventType { return EventSwipeMove }

// SwipeEndEvent is emitted when a drag gesture finishes, committed or not
type SwipeEndEvent struct {
	Committed bool
	Direction int // -1 prev, 1 next, 0 snapped back
}

func (e SwipeEndEvent) Type() EventType { return EventSwipeEnd }

// ViewAddedEvent is emitted when a view is registered
type ViewAddedEvent struct {
	Index int
	Key   string
}

func (e ViewAddedEvent) Type() EventType { return EventViewAdded }

// ViewRemovedEvent is emitted when a view is unregistered
type ViewRemovedEvent struct {
	Index int
	Key   string
}

func (e ViewRemovedEvent) Type() EventType { return EventViewRemoved }
