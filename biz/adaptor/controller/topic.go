package controller

import (
	"context"

	"techbuddies/biz/adaptor"
	"techbuddies/biz/application/dto/techbuddies/web"
	"techbuddies/provider"

	"github.com/cloudwego/hertz/pkg/app"
	hertzconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateTopic 新建文档主题
func CreateTopic(ctx context.Context, c *app.RequestContext) {
	var req web.CreateTopicReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.TopicService.CreateTopic(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetTopicTitles 去重后的主题标题列表
func GetTopicTitles(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.TopicService.ListTopicTitles(adaptor.InjectContext(ctx, c))
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetSubTopics 指定主题下的子主题
func GetSubTopics(ctx context.Context, c *app.RequestContext) {
	var req web.ListSubTopicsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.TopicService.ListSubTopics(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}
