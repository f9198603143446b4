package service

import (
	"context"
	"time"

	"techbuddies/biz/application/dto/techbuddies/web"
	"techbuddies/biz/infrastructure/consts"
	"techbuddies/biz/infrastructure/repository/topic"
	"techbuddies/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type ITopicService interface {
	CreateTopic(ctx context.Context, req *web.CreateTopicReq) (*web.Response, error)
	ListTopicTitles(ctx context.Context) (*web.ListTopicTitlesResp, error)
	ListSubTopics(ctx context.Context, req *web.ListSubTopicsReq) (*web.ListSubTopicsResp, error)
}

type TopicService struct {
	TopicMapper *topic.MongoMapper
}

var TopicServiceSet = wire.NewSet(
	wire.Struct(new(TopicService), "*"),
	wire.Bind(new(ITopicService), new(*TopicService)),
)

// CreateTopic 新建文档主题, TopicID 取创建时刻的毫秒时间戳
func (s *TopicService) CreateTopic(ctx context.Context, req *web.CreateTopicReq) (*web.Response, error) {
	t := &topic.Topic{
		TopicID:         time.Now().UnixMilli(),
		TopicTitle:      req.TopicTitle,
		SubTopicTitle:   req.SubTopicTitle,
		SubTopicContent: req.SubTopicContent,
	}
	err := s.TopicMapper.Insert(ctx, t)
	if err != nil {
		log.CtxError(ctx, "创建主题失败: %v", err)
		return nil, consts.ErrCreateTopic
	}
	return &web.Response{
		Code: 0,
		Msg:  "topic added successfully",
	}, nil
}

// ListTopicTitles 返回去重后的主题标题
func (s *TopicService) ListTopicTitles(ctx context.Context) (*web.ListTopicTitlesResp, error) {
	topics, err := s.TopicMapper.FindAll(ctx)
	if err != nil {
		log.CtxError(ctx, "获取主题列表失败: %v", err)
		return nil, consts.ErrCall
	}

	titles := lo.Uniq(lo.Map(topics, func(t *topic.Topic, _ int) string {
		return t.TopicTitle
	}))
	if len(titles) == 0 {
		return nil, consts.ErrNoTopics
	}

	return &web.ListTopicTitlesResp{
		Code: 0,
		Msg:  "success",
		Data: titles,
	}, nil
}

// ListSubTopics 按主题查询子主题, 创建时间升序
func (s *TopicService) ListSubTopics(ctx context.Context, req *web.ListSubTopicsReq) (*web.ListSubTopicsResp, error) {
	if req.Id == 0 {
		return nil, consts.ErrMissingTopic
	}
	topics, err := s.TopicMapper.FindByTopicID(ctx, req.Id)
	if err != nil {
		log.CtxError(ctx, "获取子主题失败: %v", err)
		return nil, consts.ErrCall
	}

	return &web.ListSubTopicsResp{
		Code: 0,
		Msg:  "success",
		Data: lo.Map(topics, func(t *topic.Topic, _ int) *web.TopicInfo {
			return &web.TopicInfo{
				Id:              t.ID.Hex(),
				TopicId:         t.TopicID,
				TopicTitle:      t.TopicTitle,
				SubTopicTitle:   t.SubTopicTitle,
				SubTopicContent: t.SubTopicContent,
				CreateTime:      t.CreateTime.Unix(),
			}
		}),
	}, nil
}
