package controller

import (
	"context"

	"techbuddies/biz/adaptor"
	"techbuddies/biz/application/dto/techbuddies/web"
	"techbuddies/biz/infrastructure/consts"
	"techbuddies/biz/infrastructure/util/log"
	"techbuddies/provider"

	"github.com/cloudwego/hertz/pkg/app"
	hertzconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// addBinarySubmission 视频/笔记: multipart 中的 payload 文件先传媒体存储
func addBinarySubmission(ctx context.Context, c *app.RequestContext, kind string) {
	var req web.CreateSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	rctx := adaptor.InjectContext(ctx, c)

	payloadLink := req.PayloadLink
	if fh, err := c.FormFile("payload"); err == nil {
		payloadLink, err = p.MediaClient.UploadFile(rctx, fh, kind)
		if err != nil {
			adaptor.PostProcess(ctx, c, nil, consts.ErrUpload)
			return
		}
	}

	resp, err := p.SubmissionService.Create(rctx, kind, &req, payloadLink)
	adaptor.PostProcess(ctx, c, resp, err)
}

// addJSONSubmission 文档/项目: 纯 JSON 请求体
func addJSONSubmission(ctx context.Context, c *app.RequestContext, kind string) {
	var req web.CreateSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.SubmissionService.Create(adaptor.InjectContext(ctx, c), kind, &req, "")
	adaptor.PostProcess(ctx, c, resp, err)
}

// AddVideo 投稿视频
func AddVideo(ctx context.Context, c *app.RequestContext) {
	addBinarySubmission(ctx, c, consts.KindVideo)
}

// AddNotes 投稿笔记
func AddNotes(ctx context.Context, c *app.RequestContext) {
	addBinarySubmission(ctx, c, consts.KindNote)
}

// AddDoc 投稿文档
func AddDoc(ctx context.Context, c *app.RequestContext) {
	addJSONSubmission(ctx, c, consts.KindDoc)
}

// AddProject 投稿项目
func AddProject(ctx context.Context, c *app.RequestContext) {
	addJSONSubmission(ctx, c, consts.KindProject)
}

// UpdateStatus 审核: 无条件覆盖投稿状态
// /UpdateStatus, /UpdateStatus/video, /UpdateStatus/note 共用同一处理
// 调用方身份只记录不校验
func UpdateStatus(ctx context.Context, c *app.RequestContext) {
	var req web.UpdateStatusReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	rctx := adaptor.InjectContext(ctx, c)
	meta := adaptor.ExtractUserMeta(rctx)
	log.CtxInfo(rctx, "update status, id=%s, status=%s, caller=%s", req.Id, req.StatusMsg, meta.GetUserId())

	p := provider.Get()
	resp, err := p.SubmissionService.SetStatus(rctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// UpdateDoc 编辑文档内容, 版本号+1
func UpdateDoc(ctx context.Context, c *app.RequestContext) {
	var req web.UpdateDocContentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.SubmissionService.UpdateDocContent(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func listPublished(ctx context.Context, c *app.RequestContext, kind string) {
	var req web.ListPublishedReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.SubmissionService.ListPublished(adaptor.InjectContext(ctx, c), kind, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func listByOwner(ctx context.Context, c *app.RequestContext, kind string) {
	var req web.ListByOwnerReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.SubmissionService.ListByOwner(adaptor.InjectContext(ctx, c), kind, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetVideos 课程下已发布的视频
func GetVideos(ctx context.Context, c *app.RequestContext) {
	listPublished(ctx, c, consts.KindVideo)
}

// GetNotes 课程下已发布的笔记
func GetNotes(ctx context.Context, c *app.RequestContext) {
	listPublished(ctx, c, consts.KindNote)
}

// GetDoc 课程下已发布的文档
func GetDoc(ctx context.Context, c *app.RequestContext) {
	listPublished(ctx, c, consts.KindDoc)
}

// GetVideo 作者的全部视频投稿
func GetVideo(ctx context.Context, c *app.RequestContext) {
	listByOwner(ctx, c, consts.KindVideo)
}

// GetNote 作者的全部笔记投稿
func GetNote(ctx context.Context, c *app.RequestContext) {
	listByOwner(ctx, c, consts.KindNote)
}

// GetDocs 作者的全部文档投稿
func GetDocs(ctx context.Context, c *app.RequestContext) {
	listByOwner(ctx, c, consts.KindDoc)
}

// GetProjects 作者的全部项目投稿
func GetProjects(ctx context.Context, c *app.RequestContext) {
	listByOwner(ctx, c, consts.KindProject)
}
