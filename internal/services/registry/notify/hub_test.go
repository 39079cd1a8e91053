package notify

import (
	"testing"
	"time"
)

func TestPublishWakesSubscribers(t *testing.T) {
	hub := NewHub()
	first := hub.Subscribe()
	defer first.Close()
	second := hub.Subscribe()
	defer second.Close()

	hub.Publish()

	for i, sub := range []*Subscription{first, second} {
		select {
		case <-sub.C:
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d was not signaled", i)
		}
	}
}

func TestPublishCoalescesSignals(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer sub.Close()

	hub.Publish()
	hub.Publish()
	hub.Publish()

	<-sub.C
	select {
	case <-sub.C:
		t.Fatal("expected a single pending signal")
	default:
	}
}

func TestCloseUnsubscribes(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	if hub.Len() != 1 {
		t.Fatalf("len = %d, want 1", hub.Len())
	}
	sub.Close()
	if hub.Len() != 0 {
		t.Fatalf("len = %d, want 0", hub.Len())
	}
	hub.Publish()
	select {
	case <-sub.C:
		t.Fatal("closed subscription should not be signaled")
	default:
	}
}

func TestNilHubPublish(t *testing.T) {
	var hub *Hub
	hub.Publish()
}
