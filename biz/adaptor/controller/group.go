package controller

import (
	"context"

	"techbuddies/biz/adaptor"
	"techbuddies/biz/application/dto/techbuddies/web"
	"techbuddies/provider"

	"github.com/cloudwego/hertz/pkg/app"
	hertzconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateGroup 创建聊天群组
func CreateGroup(ctx context.Context, c *app.RequestContext) {
	var req web.CreateGroupReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.GroupService.CreateGroup(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// SendMessage 向群组追加消息并持久化
func SendMessage(ctx context.Context, c *app.RequestContext) {
	var req web.SendMessageReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.GroupService.SendMessage(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}
