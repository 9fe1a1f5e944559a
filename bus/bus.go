// Package bus is an in-process publish/subscribe bus with retained messages
// and MQTT-style filters ("+" one level, "#" the rest).
package bus

import (
	"sort"
	"strings"
	"sync"
)

// Topic is a sequence of levels, e.g. {"config", "hal"}.
type Topic []string

// T builds a topic from its levels.
func T(levels ...string) Topic { return Topic(levels) }

func (t Topic) String() string { return strings.Join(t, "/") }

// Match reports whether topic t is selected by filter f.
func Match(f, t Topic) bool {
	for i, lvl := range f {
		if lvl == "#" {
			return true
		}
		if i >= len(t) {
			return false
		}
		if lvl != "+" && lvl != t[i] {
			return false
		}
	}
	return len(f) == len(t)
}

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
}

type Subscription struct {
	filter Topic
	ch     chan *Message
	conn   *Connection
}

func (s *Subscription) Topic() Topic             { return s.filter }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

type Bus struct {
	mu       sync.Mutex
	qLen     int
	subs     []*Subscription
	retained map[string]*Message
}

// NewBus creates a bus whose subscriptions buffer queueLen messages.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8
	}
	return &Bus{qLen: queueLen, retained: make(map[string]*Message)}
}

// deliver never blocks: a full queue drops its oldest message.
func deliver(s *Subscription, m *Message) {
	for {
		select {
		case s.ch <- m:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

// Publish delivers msg to every matching subscription. A retained message
// replaces the topic's stored one; a retained nil payload clears it.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if msg.Retained {
		key := msg.Topic.String()
		if msg.Payload == nil {
			delete(b.retained, key)
		} else {
			b.retained[key] = msg
		}
	}
	for _, s := range b.subs {
		if Match(s.filter, msg.Topic) {
			deliver(s, msg)
		}
	}
}

func (b *Bus) subscribe(s *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs = append(b.subs, s)

	keys := make([]string, 0, len(b.retained))
	for k, m := range b.retained {
		if Match(s.filter, m.Topic) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		deliver(s, b.retained[k])
	}
}

func (b *Bus) unsubscribe(s *Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, x := range b.subs {
		if x == s {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Connection groups the subscriptions of one client.
type Connection struct {
	bus  *Bus
	id   string
	mu   sync.Mutex
	subs []*Subscription
}

func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{bus: b, id: id}
}

func (c *Connection) ID() string { return c.id }

func (c *Connection) NewMessage(t Topic, payload any, retained bool) *Message {
	return &Message{Topic: t, Payload: payload, Retained: retained}
}

func (c *Connection) Publish(msg *Message) { c.bus.Publish(msg) }

// Subscribe registers filter; matching retained messages arrive first.
func (c *Connection) Subscribe(filter Topic) *Subscription {
	s := &Subscription{filter: filter, ch: make(chan *Message, c.bus.qLen), conn: c}
	c.mu.Lock()
	c.subs = append(c.subs, s)
	c.mu.Unlock()
	c.bus.subscribe(s)
	return s
}

// Unsubscribe detaches s and closes its channel. Safe to call twice.
func (c *Connection) Unsubscribe(s *Subscription) {
	c.mu.Lock()
	for i, x := range c.subs {
		if x == s {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	if c.bus.unsubscribe(s) {
		close(s.ch)
	}
}

// Disconnect drops every subscription of c.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()
	for _, s := range subs {
		if c.bus.unsubscribe(s) {
			close(s.ch)
		}
	}
}
