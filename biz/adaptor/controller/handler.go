package controller

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	hertzconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Ping .
func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(hertzconsts.StatusOK, map[string]string{
		"ping": "pong",
	})
}
