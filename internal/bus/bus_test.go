package bus

import (
	"context"
	"testing"
	"time"
)

func TestPublish_DeliversByType(t *testing.T) {
	type matched struct{ N int }
	type unmatched struct{}

	got := []int{}
	Subscribe("test", func(ctx context.Context, event matched) error {
		got = append(got, event.N)
		return nil
	})
	Subscribe("test", func(ctx context.Context, event unmatched) error {
		t.Errorf("unexpected event: %+v", event)
		return nil
	})

	Publish(matched{N: 1})
	Publish(matched{N: 2})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestHub_FansOutToSubscribers(t *testing.T) {
	type fanEvent struct{ S string }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub[fanEvent]().Register()

	eventC, unsubscribe := hub.Subscribe(ctx)
	defer unsubscribe()

	go Publish(fanEvent{S: "hello"})

	select {
	case got := <-eventC:
		if got.S != "hello" {
			t.Errorf("got %q, want %q", got.S, "hello")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	type dropEvent struct{ N int }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub[dropEvent]().Register()

	_, unsubscribe := hub.Subscribe(ctx)
	unsubscribe()

	done := make(chan struct{})
	go func() {
		Publish(dropEvent{N: 3})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on removed subscriber")
	}
}
