package ws

import (
	"sync"

	"techbuddies/biz/infrastructure/util/log"

	"github.com/bytedance/gopkg/util/gopool"
)

// Conn 是广播通道需要的最小连接能力, *websocket.Conn 满足该接口
type Conn interface {
	WriteJSON(v any) error
}

// Frame 下发给房间成员的事件帧
type Frame struct {
	Event string `json:"event"`
	Room  string `json:"room"`
	Data  any    `json:"data,omitempty"`
}

const clientFrameBuffer = 256

// Client 包装一个连接, 帧先入队再由唯一的写协程按入队顺序投递,
// 同一连接收到的帧顺序与 Publish 调用顺序一致
type Client struct {
	mu     sync.Mutex
	closed bool
	conn   Conn
	frames chan Frame
}

func NewClient(conn Conn) *Client {
	c := &Client{
		conn:   conn,
		frames: make(chan Frame, clientFrameBuffer),
	}
	gopool.Go(c.writeLoop)
	return c
}

func (c *Client) writeLoop() {
	for frame := range c.frames {
		if err := c.conn.WriteJSON(frame); err != nil {
			log.Error("广播失败, room=%s, event=%s, err=%v", frame.Room, frame.Event, err)
		}
	}
}

// enqueue 入队一帧, 连接已关闭或队列已满时丢弃
func (c *Client) enqueue(frame Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.frames <- frame:
	default:
		log.Error("消费过慢丢帧, room=%s, event=%s", frame.Room, frame.Event)
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.frames)
}

// Hub 房间广播表, 进程内唯一的共享可变结构
// 加入/退出/广播都在互斥锁内取成员快照, 投递在锁外进行
type Hub struct {
	mu     sync.Mutex
	rooms  map[string]map[*Client]struct{}
	joined map[*Client]map[string]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		joined: make(map[*Client]map[string]struct{}),
	}
}

// Join 将连接加入房间, 重复加入为幂等
func (h *Hub) Join(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[client] = struct{}{}

	joined, ok := h.joined[client]
	if !ok {
		joined = make(map[string]struct{})
		h.joined[client] = joined
	}
	joined[room] = struct{}{}
}

// Publish 向房间所有成员广播(包含发送者), 尽力投递, 房间不存在时静默返回
func (h *Hub) Publish(room string, event string, data any) int {
	h.mu.Lock()
	members, ok := h.rooms[room]
	if !ok || len(members) == 0 {
		h.mu.Unlock()
		return 0
	}
	snapshot := make([]*Client, 0, len(members))
	for c := range members {
		snapshot = append(snapshot, c)
	}
	h.mu.Unlock()

	frame := Frame{Event: event, Room: room, Data: data}
	for _, c := range snapshot {
		c.enqueue(frame)
	}
	return len(snapshot)
}

// Disconnect 将连接从所有房间移除并停掉写协程, 不通知其他成员
func (h *Hub) Disconnect(client *Client) {
	h.mu.Lock()
	for room := range h.joined[client] {
		delete(h.rooms[room], client)
		if len(h.rooms[room]) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(h.joined, client)
	h.mu.Unlock()

	client.close()
}

// Members 返回房间当前成员数
func (h *Hub) Members(room string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[room])
}
