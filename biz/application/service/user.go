package service

import (
	"context"
	"errors"
	"regexp"

	"techbuddies/biz/adaptor"
	"techbuddies/biz/application/dto/techbuddies/web"
	"techbuddies/biz/infrastructure/consts"
	"techbuddies/biz/infrastructure/repository/user"
	"techbuddies/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type IUserService interface {
	Register(ctx context.Context, req *web.RegisterReq) (*web.RegisterResp, error)
	Login(ctx context.Context, req *web.LoginReq) (*web.LoginResp, error)
}

type UserService struct {
	UserMapper *user.MongoMapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// Register 注册用户, 邮箱和用户名都要求唯一
func (s *UserService) Register(ctx context.Context, req *web.RegisterReq) (*web.RegisterResp, error) {
	_, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if err == nil {
		return nil, consts.ErrEmailInUse
	}
	if !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrSignUp
	}

	_, err = s.UserMapper.FindOneByUsername(ctx, req.Username)
	if err == nil {
		return nil, consts.ErrUsernameInUse
	}
	if !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrSignUp
	}

	u := &user.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	err = s.UserMapper.Insert(ctx, u)
	if err != nil {
		log.CtxError(ctx, "注册用户失败: %v", err)
		return nil, consts.ErrSignUp
	}

	return &web.RegisterResp{
		Code: 0,
		Msg:  "User Registered",
		Data: toUserInfo(u),
	}, nil
}

// Login Data 字段按正则判定是邮箱还是用户名
// 口令比对沿用原有明文语义, 未命中统一返回 Password Incorrect
func (s *UserService) Login(ctx context.Context, req *web.LoginReq) (*web.LoginResp, error) {
	var u *user.User
	var err error

	switch {
	case emailRegex.MatchString(req.Data):
		u, err = s.UserMapper.FindOneByEmail(ctx, req.Data)
	case usernameRegex.MatchString(req.Data):
		u, err = s.UserMapper.FindOneByUsername(ctx, req.Data)
	default:
		return nil, consts.ErrSignIn
	}

	if errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrPasswordIncorrect
	}
	if err != nil {
		return nil, consts.ErrSignIn
	}
	if u.Password != req.Password {
		return nil, consts.ErrPasswordIncorrect
	}

	accessToken, accessExpire, err := adaptor.GenerateJwtToken(u.ID.Hex())
	if err != nil {
		log.CtxError(ctx, "签发token失败: %v", err)
		return nil, consts.ErrSignIn
	}

	return &web.LoginResp{
		Code:         0,
		Msg:          "Login Successfully",
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
		Data:         toUserInfo(u),
	}, nil
}

func toUserInfo(u *user.User) *web.UserInfo {
	return &web.UserInfo{
		Id:        u.ID.Hex(),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
