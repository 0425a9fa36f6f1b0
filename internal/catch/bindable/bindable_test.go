package bindable

import "testing"

func TestBindToFollowsSource(t *testing.T) {
	src := New[float32](10)
	dst := New[float32](0)

	dst.BindTo(src)
	if dst.Value() != 10 {
		t.Errorf("BindTo should adopt source value, got %v", dst.Value())
	}

	src.Set(42)
	if dst.Value() != 42 {
		t.Errorf("bound value should follow source, got %v", dst.Value())
	}
}

func TestUnbindFromStopsFollowing(t *testing.T) {
	src := New(1)
	dst := New(0)

	dst.BindTo(src)
	dst.UnbindFrom(src)
	src.Set(5)

	if dst.Value() != 1 {
		t.Errorf("unbound value should keep last received value 1, got %d", dst.Value())
	}
	if src.BindingCount() != 0 {
		t.Errorf("source should have no targets, got %d", src.BindingCount())
	}
}

func TestUnbindIsIdempotent(t *testing.T) {
	src := New(1)
	other := New(2)
	dst := New(0)

	// Never bound
	dst.UnbindFrom(src)
	dst.UnbindFrom(nil)

	dst.BindTo(src)
	// Unbinding from the wrong source must not detach the real one
	dst.UnbindFrom(other)
	if !dst.IsBound() || dst.Source() != src {
		t.Fatal("unbinding from an unrelated source should be a no-op")
	}

	dst.UnbindFrom(src)
	dst.UnbindFrom(src)
	if dst.IsBound() {
		t.Error("expected dst to be unbound")
	}
}

func TestRebindReplacesBinding(t *testing.T) {
	a := New(1)
	b := New(2)
	dst := New(0)

	dst.BindTo(a)
	dst.BindTo(a) // same source again
	if a.BindingCount() != 1 {
		t.Fatalf("rebinding to the same source should not stack, got %d", a.BindingCount())
	}

	dst.BindTo(b)
	if a.BindingCount() != 0 {
		t.Errorf("old source should lose its target, got %d", a.BindingCount())
	}
	if b.BindingCount() != 1 {
		t.Errorf("new source should have exactly one target, got %d", b.BindingCount())
	}

	a.Set(100)
	if dst.Value() != 2 {
		t.Errorf("dst should ignore old source, got %d", dst.Value())
	}
}

func TestBindValueChanged(t *testing.T) {
	b := New(3)

	var events []ValueChangedEvent[int]
	unsubscribe := b.BindValueChanged(func(e ValueChangedEvent[int]) {
		events = append(events, e)
	}, true)

	if len(events) != 1 || events[0].NewValue != 3 {
		t.Fatalf("runOnceImmediately should fire with current value, got %+v", events)
	}

	b.Set(3) // unchanged
	b.Set(4)
	if len(events) != 2 || events[1].OldValue != 3 || events[1].NewValue != 4 {
		t.Fatalf("unexpected events %+v", events)
	}

	unsubscribe()
	unsubscribe()
	b.Set(5)
	if len(events) != 2 {
		t.Errorf("unsubscribed callback should not fire, got %d events", len(events))
	}
	if b.SubscriberCount() != 0 {
		t.Errorf("expected no subscribers, got %d", b.SubscriberCount())
	}
}

func TestChangePropagatesThroughChain(t *testing.T) {
	model := New(0.0)
	view := New(0.0)

	fired := 0
	view.BindValueChanged(func(ValueChangedEvent[float64]) { fired++ }, false)

	view.BindTo(model)
	model.Set(1.5)

	if fired != 1 {
		t.Errorf("expected 1 change notification on view, got %d", fired)
	}
}

func TestUnbindBindings(t *testing.T) {
	src := New("a")
	mid := New("")
	leaf := New("")

	mid.BindTo(src)
	leaf.BindTo(mid)

	mid.UnbindBindings()

	if src.BindingCount() != 0 || mid.BindingCount() != 0 || leaf.IsBound() {
		t.Error("UnbindBindings should detach both directions")
	}
}
