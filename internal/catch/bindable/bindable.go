// Package bindable provides observable values that can mirror one another.
//
// A Bindable bound to a source follows every change of the source value
// synchronously. The binding is one-way: the source owns the value and a bound
// target only observes it. Bindings are explicit subscribe/unsubscribe pairs held
// by the two values involved; there is no global event bus.
package bindable

// ValueChangedEvent describes a change of a Bindable value.
type ValueChangedEvent[T any] struct {
	OldValue T
	NewValue T
}

type subscriber[T any] struct {
	id int
	fn func(ValueChangedEvent[T])
}

// Bindable is an observable value of type T.
// The zero value is not usable; create one with New.
type Bindable[T comparable] struct {
	value       T
	source      *Bindable[T]
	targets     []*Bindable[T]
	subscribers []subscriber[T]
	nextID      int
}

// New creates a bindable holding the given initial value.
func New[T comparable](value T) *Bindable[T] {
	return &Bindable[T]{value: value}
}

// Value returns the current value.
func (b *Bindable[T]) Value() T {
	return b.value
}

// Set changes the value, notifying subscribers and bound targets.
// Setting the current value again is a no-op.
func (b *Bindable[T]) Set(value T) {
	if value == b.value {
		return
	}

	old := b.value
	b.value = value

	// Iterate over a snapshot: callbacks may unsubscribe themselves.
	subs := append([]subscriber[T](nil), b.subscribers...)
	for _, s := range subs {
		s.fn(ValueChangedEvent[T]{OldValue: old, NewValue: value})
	}

	targets := append([]*Bindable[T](nil), b.targets...)
	for _, t := range targets {
		t.Set(value)
	}
}

// BindTo makes b follow source. Any previous source binding is replaced, so
// repeated rebinding never stacks. The current source value is adopted immediately.
func (b *Bindable[T]) BindTo(source *Bindable[T]) {
	if source == nil || source == b {
		return
	}
	if b.source == source {
		return
	}
	if b.source != nil {
		b.UnbindFrom(b.source)
	}

	source.targets = append(source.targets, b)
	b.source = source
	b.Set(source.value)
}

// UnbindFrom stops b following source. It is a no-op when b is not bound to source.
// The last received value is kept.
func (b *Bindable[T]) UnbindFrom(source *Bindable[T]) {
	if source == nil || b.source != source {
		return
	}

	for i, t := range source.targets {
		if t == b {
			source.targets = append(source.targets[:i], source.targets[i+1:]...)
			break
		}
	}
	b.source = nil
}

// UnbindBindings detaches b from its source and detaches every target following b.
// Value-changed subscriptions are kept.
func (b *Bindable[T]) UnbindBindings() {
	if b.source != nil {
		b.UnbindFrom(b.source)
	}
	for _, t := range append([]*Bindable[T](nil), b.targets...) {
		t.UnbindFrom(b)
	}
}

// Source returns the bindable b currently follows, or nil.
func (b *Bindable[T]) Source() *Bindable[T] {
	return b.source
}

// IsBound reports whether b follows a source.
func (b *Bindable[T]) IsBound() bool {
	return b.source != nil
}

// BindingCount returns how many targets currently follow b.
func (b *Bindable[T]) BindingCount() int {
	return len(b.targets)
}

// SubscriberCount returns how many value-changed callbacks are registered.
func (b *Bindable[T]) SubscriberCount() int {
	return len(b.subscribers)
}

// BindValueChanged registers fn to run on every value change.
// With runOnceImmediately, fn is also invoked right away with the current value
// as both old and new. The returned function removes the subscription and may be
// called any number of times.
func (b *Bindable[T]) BindValueChanged(fn func(ValueChangedEvent[T]), runOnceImmediately bool) func() {
	id := b.nextID
	b.nextID++
	b.subscribers = append(b.subscribers, subscriber[T]{id: id, fn: fn})

	if runOnceImmediately {
		fn(ValueChangedEvent[T]{OldValue: b.value, NewValue: b.value})
	}

	return func() {
		for i, s := range b.subscribers {
			if s.id == id {
				b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
				return
			}
		}
	}
}
