package input

// Handler processes an event and reports whether it consumed it
// A consumed event must not fall through to platform default behaviour
type Handler func(Event) bool

type entry struct {
	id uint32
	fn Handler
}

// Bus fans events out to subscribed handlers per kind
type Bus struct {
	handlers map[Kind][]entry
	nextID   uint32
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{handlers: make(map[Kind][]entry)}
}

// Subscription allows removing a registered handler
type Subscription struct {
	id   uint32
	kind Kind
	bus  *Bus
}

// Subscribe registers fn for events of kind
func (b *Bus) Subscribe(kind Kind, fn Handler) Subscription {
	b.nextID++
	b.handlers[kind] = append(b.handlers[kind], entry{id: b.nextID, fn: fn})
	return Subscription{id: b.nextID, kind: kind, bus: b}
}

// Remove unregisters the handler; removing twice is a no-op
// Safe to call from inside a handler: the list is replaced, never edited in place
func (s Subscription) Remove() {
	if s.bus == nil {
		return
	}
	list := s.bus.handlers[s.kind]
	for i := range list {
		if list[i].id != s.id {
			continue
		}
		if len(list) == 1 {
			delete(s.bus.handlers, s.kind)
			return
		}
		s.bus.handlers[s.kind] = append(list[:i:i], list[i+1:]...)
		return
	}
}

// Dispatch delivers ev to every handler of its kind
// Handlers removed during delivery are skipped; handlers added during delivery wait for the next event
// Returns true if any handler consumed it
func (b *Bus) Dispatch(ev Event) bool {
	consumed := false
	for _, e := range b.handlers[ev.Kind] {
		if !b.registered(ev.Kind, e.id) {
			continue
		}
		if e.fn(ev) {
			consumed = true
		}
	}
	return consumed
}

func (b *Bus) registered(kind Kind, id uint32) bool {
	for _, e := range b.handlers[kind] {
		if e.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of registered handlers
func (b *Bus) Len() int {
	n := 0
	for _, list := range b.handlers {
		n += len(list)
	}
	return n
}
