package service

import (
	"context"
	"errors"
	"strings"

	"techbuddies/biz/application/dto/techbuddies/web"
	"techbuddies/biz/infrastructure/consts"
	"techbuddies/biz/infrastructure/repository/submission"
	"techbuddies/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type ISubmissionService interface {
	Create(ctx context.Context, kind string, req *web.CreateSubmissionReq, payloadLink string) (*web.CreateSubmissionResp, error)
	SetStatus(ctx context.Context, req *web.UpdateStatusReq) (*web.UpdateStatusResp, error)
	ListByOwner(ctx context.Context, kind string, req *web.ListByOwnerReq) (*web.ListSubmissionsResp, error)
	ListPublished(ctx context.Context, kind string, req *web.ListPublishedReq) (*web.ListSubmissionsResp, error)
	UpdateDocContent(ctx context.Context, req *web.UpdateDocContentReq) (*web.UpdateDocContentResp, error)
}

// SubmissionStore 投稿持久化入口
type SubmissionStore interface {
	Insert(ctx context.Context, s *submission.Submission) error
	Update(ctx context.Context, s *submission.Submission) error
	FindOne(ctx context.Context, id string) (*submission.Submission, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	FindByOwner(ctx context.Context, ownerID string, kind string) ([]*submission.Submission, error)
	FindPublished(ctx context.Context, courseID string, kind string) ([]*submission.Submission, error)
}

// PublishCache 已发布列表的读缓存
type PublishCache interface {
	Get(ctx context.Context, courseID, kind string) ([]*submission.Submission, error)
	Set(ctx context.Context, courseID, kind string, data []*submission.Submission) error
	Delete(ctx context.Context, courseID, kind string) error
}

type SubmissionService struct {
	SubmissionMapper SubmissionStore
	PublishCache     PublishCache
}

var SubmissionServiceSet = wire.NewSet(
	wire.Struct(new(SubmissionService), "*"),
	wire.Bind(new(ISubmissionService), new(*SubmissionService)),
)

// NormalizeStatus 将外部传入的审核状态归一到三个合法值
func NormalizeStatus(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return consts.StatusPending, nil
	case "accepted":
		return consts.StatusAccepted, nil
	case "rejected":
		return consts.StatusRejected, nil
	default:
		return "", consts.ErrInvalidStatus
	}
}

func validKind(kind string) bool {
	switch kind {
	case consts.KindVideo, consts.KindNote, consts.KindDoc, consts.KindProject:
		return true
	}
	return false
}

// Create 新建投稿, 状态强制为 Pending
// 与课程/用户不同, 投稿不做重复标题检查
func (s *SubmissionService) Create(ctx context.Context, kind string, req *web.CreateSubmissionReq, payloadLink string) (*web.CreateSubmissionResp, error) {
	if !validKind(kind) {
		return nil, consts.ErrInvalidKind
	}
	if req.OwnerId == "" || req.CourseId == "" {
		return nil, consts.ErrInvalidParams
	}

	sub := &submission.Submission{
		Kind:        kind,
		OwnerID:     req.OwnerId,
		CourseID:    req.CourseId,
		Title:       req.Title,
		Description: req.Description,
		Status:      consts.StatusPending,
	}
	switch kind {
	case consts.KindProject:
		sub.RepoURL = req.RepoUrl
	case consts.KindDoc:
		sub.PayloadLink = req.PayloadLink
		sub.ContentID = req.ContentId
		sub.Version = consts.DocBaseVer
	default:
		sub.PayloadLink = payloadLink
	}

	err := s.SubmissionMapper.Insert(ctx, sub)
	if err != nil {
		log.CtxError(ctx, "创建投稿失败: %v", err)
		return nil, consts.ErrCreateSubmission
	}

	return &web.CreateSubmissionResp{
		Code: 0,
		Msg:  "success",
		Data: toSubmissionInfo(sub),
	}, nil
}

// SetStatus 无条件覆盖状态, 不校验调用方身份, 也不限制状态迁移方向
func (s *SubmissionService) SetStatus(ctx context.Context, req *web.UpdateStatusReq) (*web.UpdateStatusResp, error) {
	status, err := NormalizeStatus(req.StatusMsg)
	if err != nil {
		return nil, err
	}

	err = s.SubmissionMapper.UpdateStatus(ctx, req.Id, status)
	if err != nil {
		var en *consts.Errno
		if errors.As(err, &en) {
			return nil, err
		}
		log.CtxError(ctx, "更新审核状态失败: %v", err)
		return nil, consts.ErrUpdateStatus
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	// 状态变化后让发布列表缓存失效
	if err := s.PublishCache.Delete(ctx, sub.CourseID, sub.Kind); err != nil {
		log.CtxError(ctx, "发布列表缓存失效失败: %v", err)
	}

	return &web.UpdateStatusResp{
		Code: 0,
		Msg:  "success",
		Data: toSubmissionInfo(sub),
	}, nil
}

// ListByOwner 作者视角, 返回全部状态的投稿
func (s *SubmissionService) ListByOwner(ctx context.Context, kind string, req *web.ListByOwnerReq) (*web.ListSubmissionsResp, error) {
	if !validKind(kind) {
		return nil, consts.ErrInvalidKind
	}
	submissions, err := s.SubmissionMapper.FindByOwner(ctx, req.Id, kind)
	if err != nil {
		log.CtxError(ctx, "获取作者投稿失败: %v", err)
		return nil, consts.ErrGetSubmissions
	}
	return &web.ListSubmissionsResp{
		Code: 0,
		Msg:  "success",
		Data: lo.Map(submissions, func(sub *submission.Submission, _ int) *web.SubmissionInfo {
			return toSubmissionInfo(sub)
		}),
	}, nil
}

// ListPublished 公开视角, 只返回 Accepted 的投稿
func (s *SubmissionService) ListPublished(ctx context.Context, kind string, req *web.ListPublishedReq) (*web.ListSubmissionsResp, error) {
	if !validKind(kind) {
		return nil, consts.ErrInvalidKind
	}

	submissions, err := s.PublishCache.Get(ctx, req.Id, kind)
	if err != nil {
		submissions, err = s.SubmissionMapper.FindPublished(ctx, req.Id, kind)
		if err != nil {
			log.CtxError(ctx, "获取发布投稿失败: %v", err)
			return nil, consts.ErrGetSubmissions
		}
		if err := s.PublishCache.Set(ctx, req.Id, kind, submissions); err != nil {
			log.CtxError(ctx, "写入发布列表缓存失败: %v", err)
		}
	}

	return &web.ListSubmissionsResp{
		Code: 0,
		Msg:  "success",
		Data: lo.Map(submissions, func(sub *submission.Submission, _ int) *web.SubmissionInfo {
			return toSubmissionInfo(sub)
		}),
	}, nil
}

// UpdateDocContent 仅文档类投稿可编辑内容, 每次调用版本号+1, 内容未变也自增
func (s *SubmissionService) UpdateDocContent(ctx context.Context, req *web.UpdateDocContentReq) (*web.UpdateDocContentResp, error) {
	sub, err := s.SubmissionMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if sub.Kind != consts.KindDoc {
		return nil, consts.ErrInvalidKind
	}

	if req.Title != nil {
		sub.Title = *req.Title
	}
	if req.Description != nil {
		sub.Description = *req.Description
	}
	if req.PayloadLink != nil {
		sub.PayloadLink = *req.PayloadLink
	}
	sub.Version++

	err = s.SubmissionMapper.Update(ctx, sub)
	if err != nil {
		log.CtxError(ctx, "更新文档内容失败: %v", err)
		return nil, consts.ErrUpdate
	}

	if err := s.PublishCache.Delete(ctx, sub.CourseID, sub.Kind); err != nil {
		log.CtxError(ctx, "发布列表缓存失效失败: %v", err)
	}

	return &web.UpdateDocContentResp{
		Code: 0,
		Msg:  "success",
		Data: toSubmissionInfo(sub),
	}, nil
}

func toSubmissionInfo(sub *submission.Submission) *web.SubmissionInfo {
	return &web.SubmissionInfo{
		Id:          sub.ID.Hex(),
		Kind:        sub.Kind,
		OwnerId:     sub.OwnerID,
		CourseId:    sub.CourseID,
		Title:       sub.Title,
		Description: sub.Description,
		PayloadLink: sub.PayloadLink,
		RepoUrl:     sub.RepoURL,
		ContentId:   sub.ContentID,
		Version:     sub.Version,
		Status:      sub.Status,
		CreateTime:  sub.CreateTime.Unix(),
		UpdateTime:  sub.UpdateTime.Unix(),
	}
}
