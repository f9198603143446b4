package adaptor

import (
	"context"
	"errors"
	"net/http"

	"techbuddies/biz/infrastructure/consts"
	"techbuddies/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
)

type errorBody struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}

// PostProcess 统一出口: 成功返回业务响应, 失败按错误类别映射HTTP状态码
func PostProcess(ctx context.Context, c *app.RequestContext, resp any, err error) {
	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	log.CtxInfo(ctx, "request failed, err=%v", err)

	var en *consts.Errno
	if !errors.As(err, &en) {
		c.JSON(http.StatusInternalServerError, errorBody{
			Code: int64(codes.Internal),
			Msg:  "Please Try Again",
		})
		return
	}

	c.JSON(httpStatus(en.Code()), errorBody{
		Code: int64(en.Code()),
		Msg:  en.Error(),
	})
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.Internal, codes.Unknown:
		return http.StatusInternalServerError
	default:
		// 业务自定义错误码
		return http.StatusBadRequest
	}
}
