package network

import (
	"testing"

	"rivermarsh-server/pkg/api"
)

func TestBroadcaster(t *testing.T) {
	b := NewBroadcaster()

	ch1 := b.Register("session-1")
	ch2 := b.Register("session-2")

	if b.SubscriberCount() != 2 {
		t.Fatalf("Expected 2 subscribers, got %d", b.SubscriberCount())
	}

	t.Run("broadcast reaches everyone", func(t *testing.T) {
		b.Broadcast(api.ServerMessage{Type: api.MessageSnapshot})
		for _, ch := range []chan api.ServerMessage{ch1, ch2} {
			select {
			case msg := <-ch:
				if msg.Type != api.MessageSnapshot {
					t.Errorf("Expected snapshot, got %s", msg.Type)
				}
			default:
				t.Error("Expected a message in the channel")
			}
		}
	})

	t.Run("unicast reaches only the target", func(t *testing.T) {
		b.SendTo("session-1", api.ServerMessage{Type: api.MessageError, Error: "boom"})
		select {
		case msg := <-ch1:
			if msg.Error != "boom" {
				t.Errorf("Unexpected message: %+v", msg)
			}
		default:
			t.Error("Expected a message for session-1")
		}
		select {
		case msg := <-ch2:
			t.Errorf("Unexpected message for session-2: %+v", msg)
		default:
		}
	})

	t.Run("unregister closes the channel", func(t *testing.T) {
		b.Unregister("session-2")
		if b.HasSubscriber("session-2") {
			t.Error("Expected session-2 to be gone")
		}
		if _, open := <-ch2; open {
			t.Error("Expected channel to be closed")
		}
	})

	t.Run("re-register closes the old channel", func(t *testing.T) {
		ch1b := b.Register("session-1")
		if _, open := <-ch1; open {
			t.Error("Expected old channel to be closed")
		}
		b.SendTo("session-1", api.ServerMessage{Type: api.MessageInit})
		select {
		case msg := <-ch1b:
			if msg.Type != api.MessageInit {
				t.Errorf("Expected init, got %s", msg.Type)
			}
		default:
			t.Error("Expected a message in the new channel")
		}
	})

	t.Run("send to unknown session is a no-op", func(t *testing.T) {
		b.SendTo("ghost", api.ServerMessage{Type: api.MessageInit})
	})
}
