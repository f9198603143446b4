package controller

import (
	"context"
	"time"

	"techbuddies/biz/adaptor"
	"techbuddies/biz/application/dto/techbuddies/web"
	"techbuddies/biz/infrastructure/consts"
	"techbuddies/biz/infrastructure/util/log"
	"techbuddies/biz/infrastructure/ws"
	"techbuddies/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/websocket"
	"github.com/spf13/cast"
)

var upgrader = websocket.HertzUpgrader{
	CheckOrigin: func(_ *app.RequestContext) bool {
		return true
	},
}

// chatEvent 实时事件帧, data 为松散的键值对
type chatEvent struct {
	Event string         `json:"event"`
	Room  string         `json:"room"`
	Data  map[string]any `json:"data"`
}

// Chat websocket 入口
// join_room 加入房间; send_message 先落库(尽力而为)再向房间广播 receive_message
// 落库与广播是两个独立步骤, 二者之间没有顺序保证
func Chat(ctx context.Context, c *app.RequestContext) {
	rctx := adaptor.InjectContext(ctx, c)
	err := upgrader.Upgrade(c, func(conn *websocket.Conn) {
		p := provider.Get()
		client := ws.NewClient(conn)
		defer p.Hub.Disconnect(client)

		for {
			var evt chatEvent
			if err := conn.ReadJSON(&evt); err != nil {
				log.CtxInfo(rctx, "chat connection closed: %v", err)
				return
			}

			switch evt.Event {
			case consts.EventJoinRoom:
				p.Hub.Join(client, evt.Room)
			case consts.EventSendMessage:
				handleSendMessage(rctx, p, evt)
			default:
				log.CtxInfo(rctx, "unknown chat event: %s", evt.Event)
			}
		}
	})
	if err != nil {
		log.CtxError(rctx, "websocket upgrade failed: %v", err)
	}
}

func handleSendMessage(ctx context.Context, p *provider.Provider, evt chatEvent) {
	sender := cast.ToString(evt.Data["sender"])
	content := cast.ToString(evt.Data["content"])

	// 先尽力持久化到群组消息序列, 失败不阻塞广播
	if groupID := cast.ToInt64(evt.Data["groupId"]); groupID > 0 {
		_, err := p.GroupService.SendMessage(ctx, &web.SendMessageReq{
			GroupId: groupID,
			Sender:  sender,
			Content: content,
		})
		if err != nil {
			log.CtxError(ctx, "持久化群消息失败, groupId=%d, err=%v", groupID, err)
		}
	}

	delivered := p.Hub.Publish(evt.Room, consts.EventReceiveMessage, map[string]any{
		"sender":    sender,
		"content":   content,
		"timestamp": time.Now().Unix(),
	})
	log.CtxInfo(ctx, "broadcast room=%s, delivered=%d", evt.Room, delivered)
}
