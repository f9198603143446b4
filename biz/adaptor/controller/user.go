package controller

import (
	"context"

	"techbuddies/biz/adaptor"
	"techbuddies/biz/application/dto/techbuddies/web"
	"techbuddies/biz/infrastructure/util"
	"techbuddies/biz/infrastructure/util/log"
	"techbuddies/provider"

	"github.com/cloudwego/hertz/pkg/app"
	hertzconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Register 注册用户
func Register(ctx context.Context, c *app.RequestContext) {
	var req web.RegisterReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	log.CtxInfo(ctx, "register req=%s", util.JSONF(&req))

	p := provider.Get()
	resp, err := p.UserService.Register(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// Login 登录
func Login(ctx context.Context, c *app.RequestContext) {
	var req web.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.UserService.Login(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}
