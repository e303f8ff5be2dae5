package ownership

// Handle is an opaque reference to a ledger entry.
// Handle 0 is reserved and means "not tracked".
type Handle uint64

// Kind identifies which owned value type a ledger entry describes.
type Kind uint8

const (
	KindStr Kind = iota + 1
	KindBuilder
	KindBuffer
	KindIntArray
	KindStrArray
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindStr:
		return "Str"
	case KindBuilder:
		return "Builder"
	case KindBuffer:
		return "Buffer"
	case KindIntArray:
		return "IntArray"
	case KindStrArray:
		return "StrArray"
	default:
		return "unknown"
	}
}

// EventType classifies lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventReleased
	EventDuplicated
	EventDoubleRelease
)

// Event represents a lifecycle event for an owned value.
type Event struct {
	Handle Handle
	Source Handle // set for EventDuplicated: the handle the copy came from
	Kind   Kind
	Type   EventType
}

// Observer receives notifications about ownership lifecycle events.
type Observer interface {
	OnOwnershipEvent(Event)
}
