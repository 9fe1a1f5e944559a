package bus

import (
	"testing"
	"time"
)

func recv(t *testing.T, s *Subscription) *Message {
	t.Helper()
	select {
	case m, ok := <-s.Channel():
		if !ok {
			t.Fatal("channel closed")
		}
		return m
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for message")
	}
	return nil
}

func none(t *testing.T, s *Subscription) {
	t.Helper()
	select {
	case m := <-s.Channel():
		t.Fatalf("unexpected message on %v", m.Topic)
	default:
	}
}

func TestMatch(t *testing.T) {
	cases := []struct {
		f, t Topic
		want bool
	}{
		{T("config", "hal"), T("config", "hal"), true},
		{T("config", "hal"), T("config", "pins"), false},
		{T("config", "+"), T("config", "pins"), true},
		{T("config", "+"), T("config", "pins", "x"), false},
		{T("config", "#"), T("config", "pins", "x"), true},
		{T("#"), T("anything"), true},
		{T("config", "hal", "x"), T("config", "hal"), false},
	}
	for _, c := range cases {
		if got := Match(c.f, c.t); got != c.want {
			t.Fatalf("Match(%v,%v) = %v, want %v", c.f, c.t, got, c.want)
		}
	}
}

func TestBasicPubSub(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("test")
	sub := conn.Subscribe(T("config", "board"))

	conn.Publish(conn.NewMessage(T("config", "board"), "arduino_mega2560", false))
	if got := recv(t, sub); got.Payload.(string) != "arduino_mega2560" {
		t.Fatalf("payload = %v", got.Payload)
	}
	conn.Publish(conn.NewMessage(T("config", "other"), 1, false))
	none(t, sub)
}

func TestRetainedDeliveredOnSubscribe(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("test")
	conn.Publish(conn.NewMessage(T("config", "limits"), "L", true))
	conn.Publish(conn.NewMessage(T("config", "hal"), "H", true))

	sub := conn.Subscribe(T("config", "+"))
	// Sorted by topic.
	if m := recv(t, sub); m.Payload != "H" {
		t.Fatalf("first = %v", m.Payload)
	}
	if m := recv(t, sub); m.Payload != "L" {
		t.Fatalf("second = %v", m.Payload)
	}

	// nil payload clears.
	conn.Publish(conn.NewMessage(T("config", "hal"), nil, true))
	recv(t, sub)
	late := conn.Subscribe(T("config", "hal"))
	none(t, late)
}

func TestDropOldestWhenFull(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")
	sub := conn.Subscribe(T("x"))
	for i := 0; i < 3; i++ {
		conn.Publish(conn.NewMessage(T("x"), i, false))
	}
	if m := recv(t, sub); m.Payload.(int) != 1 {
		t.Fatalf("oldest kept = %v, want 1", m.Payload)
	}
	if m := recv(t, sub); m.Payload.(int) != 2 {
		t.Fatalf("newest = %v, want 2", m.Payload)
	}
}

func TestUnsubscribeAndDisconnect(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")
	s1 := conn.Subscribe(T("a"))
	s2 := conn.Subscribe(T("b"))

	s1.Unsubscribe()
	s1.Unsubscribe()
	if _, ok := <-s1.Channel(); ok {
		t.Fatal("s1 channel should be closed")
	}
	conn.Disconnect()
	if _, ok := <-s2.Channel(); ok {
		t.Fatal("s2 channel should be closed")
	}
	conn.Publish(conn.NewMessage(T("a"), 1, false)) // no subscribers, no panic
}
