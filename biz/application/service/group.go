package service

import (
	"context"
	"time"

	"techbuddies/biz/application/dto/techbuddies/web"
	"techbuddies/biz/infrastructure/consts"
	"techbuddies/biz/infrastructure/repository/group"
	"techbuddies/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IGroupService interface {
	CreateGroup(ctx context.Context, req *web.CreateGroupReq) (*web.CreateGroupResp, error)
	SendMessage(ctx context.Context, req *web.SendMessageReq) (*web.SendMessageResp, error)
}

// GroupStore 群组持久化入口
type GroupStore interface {
	Insert(ctx context.Context, g *group.Group) error
	Update(ctx context.Context, g *group.Group) error
	FindOneByGroupID(ctx context.Context, groupID int64) (*group.Group, error)
}

type GroupService struct {
	GroupMapper GroupStore
}

var GroupServiceSet = wire.NewSet(
	wire.Struct(new(GroupService), "*"),
	wire.Bind(new(IGroupService), new(*GroupService)),
)

// CreateGroup 创建群组, groupId 取创建时刻的毫秒时间戳, 不强制唯一
func (s *GroupService) CreateGroup(ctx context.Context, req *web.CreateGroupReq) (*web.CreateGroupResp, error) {
	g := &group.Group{
		GroupID:  time.Now().UnixMilli(),
		Name:     req.GroupName,
		Members:  req.Members,
		Messages: []group.Message{},
	}
	err := s.GroupMapper.Insert(ctx, g)
	if err != nil {
		log.CtxError(ctx, "创建群组失败: %v", err)
		return nil, consts.ErrCreateGroup
	}

	return &web.CreateGroupResp{
		Code: 0,
		Msg:  "success",
		Data: toGroupInfo(g),
	}, nil
}

// SendMessage 读出群组后在内存追加消息并整体写回
// 两次并发追加是 last-write-wins, 这是已知且保留的限制
func (s *GroupService) SendMessage(ctx context.Context, req *web.SendMessageReq) (*web.SendMessageResp, error) {
	g, err := s.GroupMapper.FindOneByGroupID(ctx, req.GroupId)
	if err != nil {
		return nil, err
	}

	g.Messages = append(g.Messages, group.Message{
		Sender:    req.Sender,
		Content:   req.Content,
		Timestamp: time.Now(),
	})

	err = s.GroupMapper.Update(ctx, g)
	if err != nil {
		log.CtxError(ctx, "追加群消息失败: %v", err)
		return nil, consts.ErrSendMessage
	}

	return &web.SendMessageResp{
		Code: 0,
		Msg:  "success",
		Data: toGroupInfo(g),
	}, nil
}

func toGroupInfo(g *group.Group) *web.GroupInfo {
	return &web.GroupInfo{
		GroupId:   g.GroupID,
		GroupName: g.Name,
		Members:   g.Members,
		Messages: lo.Map(g.Messages, func(m group.Message, _ int) *web.MessageInfo {
			return &web.MessageInfo{
				Sender:    m.Sender,
				Content:   m.Content,
				Timestamp: m.Timestamp.Unix(),
			}
		}),
		CreateTime: g.CreateTime.Unix(),
	}
}
