package ws

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn 记录收到的帧, 供断言
type fakeConn struct {
	mu     sync.Mutex
	frames []Frame
}

func (f *fakeConn) WriteJSON(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = append(f.frames, v.(Frame))
	return nil
}

func (f *fakeConn) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.frames)
}

func (f *fakeConn) last() Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames[len(f.frames)-1]
}

func TestHubJoinIdempotent(t *testing.T) {
	h := NewHub()
	c := NewClient(&fakeConn{})

	h.Join(c, "room1")
	h.Join(c, "room1")

	assert.Equal(t, 1, h.Members("room1"))
}

func TestHubPublishIncludesSender(t *testing.T) {
	h := NewHub()
	sender := &fakeConn{}
	other := &fakeConn{}
	cs := NewClient(sender)
	co := NewClient(other)

	h.Join(cs, "room1")
	h.Join(co, "room1")

	n := h.Publish("room1", "receive_message", map[string]any{"content": "hi"})
	assert.Equal(t, 2, n)

	// 投递是异步的
	require.Eventually(t, func() bool {
		return sender.count() == 1 && other.count() == 1
	}, time.Second, 10*time.Millisecond)

	frame := sender.last()
	assert.Equal(t, "receive_message", frame.Event)
	assert.Equal(t, "room1", frame.Room)
}

func TestHubPublishOrderPerConnection(t *testing.T) {
	h := NewHub()
	conn := &fakeConn{}
	c := NewClient(conn)
	h.Join(c, "room1")

	const total = 200
	for i := 0; i < total; i++ {
		h.Publish("room1", "receive_message", i)
	}

	require.Eventually(t, func() bool {
		return conn.count() == total
	}, time.Second, 10*time.Millisecond)

	conn.mu.Lock()
	defer conn.mu.Unlock()
	for i, frame := range conn.frames {
		require.Equal(t, i, frame.Data, "frame %d out of order", i)
	}
}

func TestHubPublishUnknownRoom(t *testing.T) {
	h := NewHub()
	assert.Equal(t, 0, h.Publish("nope", "receive_message", nil))
}

func TestHubPublishDoesNotCrossRooms(t *testing.T) {
	h := NewHub()
	a := &fakeConn{}
	b := &fakeConn{}
	h.Join(NewClient(a), "room1")
	h.Join(NewClient(b), "room2")

	n := h.Publish("room1", "receive_message", nil)
	assert.Equal(t, 1, n)

	require.Eventually(t, func() bool { return a.count() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, b.count())
}

func TestHubDisconnectRemovesFromAllRooms(t *testing.T) {
	h := NewHub()
	c := NewClient(&fakeConn{})
	h.Join(c, "room1")
	h.Join(c, "room2")

	h.Disconnect(c)

	assert.Equal(t, 0, h.Members("room1"))
	assert.Equal(t, 0, h.Members("room2"))
	assert.Equal(t, 0, h.Publish("room1", "receive_message", nil))
}
