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

// AddCourse 创建课程, multipart 中必须同时带图片和视频
func AddCourse(ctx context.Context, c *app.RequestContext) {
	var req web.AddCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	imageFile, imgErr := c.FormFile("imageLink")
	videoFile, vidErr := c.FormFile("videoLink")
	if imgErr != nil || vidErr != nil {
		adaptor.PostProcess(ctx, c, nil, consts.ErrMediaRequired)
		return
	}

	p := provider.Get()
	rctx := adaptor.InjectContext(ctx, c)

	imageLink, err := p.MediaClient.UploadFile(rctx, imageFile, "Course_image")
	if err != nil {
		adaptor.PostProcess(ctx, c, nil, consts.ErrUpload)
		return
	}
	videoLink, err := p.MediaClient.UploadFile(rctx, videoFile, "Course_video")
	if err != nil {
		adaptor.PostProcess(ctx, c, nil, consts.ErrUpload)
		return
	}

	log.CtxInfo(ctx, "course media uploaded, image=%s, video=%s", imageLink, videoLink)

	resp, err := p.CourseService.AddCourse(rctx, &req, imageLink, videoLink)
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetCourse 按 id 查询课程
func GetCourse(ctx context.Context, c *app.RequestContext) {
	var req web.GetCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.GetCourse(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetAllCourses 全量课程列表
func GetAllCourses(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.CourseService.ListAllCourses(adaptor.InjectContext(ctx, c))
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetCoursesByUser 按创建者查询课程列表
func GetCoursesByUser(ctx context.Context, c *app.RequestContext) {
	var req web.GetCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.ListCoursesByUser(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// AddEnrolledCourse 选课
func AddEnrolledCourse(ctx context.Context, c *app.RequestContext) {
	var req web.AddEnrolledCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.AddEnrolledCourse(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetEnrolledCourses 按用户查询选课记录
func GetEnrolledCourses(ctx context.Context, c *app.RequestContext) {
	var req web.GetEnrolledCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(hertzconsts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.ListEnrolledCourses(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}
