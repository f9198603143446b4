package service

import (
	"context"
	"errors"

	"techbuddies/biz/application/dto/techbuddies/web"
	"techbuddies/biz/infrastructure/consts"
	"techbuddies/biz/infrastructure/repository/course"
	"techbuddies/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type ICourseService interface {
	AddCourse(ctx context.Context, req *web.AddCourseReq, imageLink, videoLink string) (*web.AddCourseResp, error)
	GetCourse(ctx context.Context, req *web.GetCourseReq) (*web.GetCourseResp, error)
	ListAllCourses(ctx context.Context) (*web.ListCoursesResp, error)
	ListCoursesByUser(ctx context.Context, req *web.GetCourseReq) (*web.ListCoursesResp, error)
	AddEnrolledCourse(ctx context.Context, req *web.AddEnrolledCourseReq) (*web.AddEnrolledCourseResp, error)
	ListEnrolledCourses(ctx context.Context, req *web.GetEnrolledCourseReq) (*web.ListEnrollmentsResp, error)
}

type CourseService struct {
	CourseMapper     *course.MongoMapper
	EnrollmentMapper *course.EnrollmentMongoMapper
}

var CourseServiceSet = wire.NewSet(
	wire.Struct(new(CourseService), "*"),
	wire.Bind(new(ICourseService), new(*CourseService)),
)

// AddCourse 创建课程, 标题要求唯一, 媒体文件已在上层传至媒体存储
func (s *CourseService) AddCourse(ctx context.Context, req *web.AddCourseReq, imageLink, videoLink string) (*web.AddCourseResp, error) {
	_, err := s.CourseMapper.FindOneByTitle(ctx, req.Title)
	if err == nil {
		return nil, consts.ErrCourseExist
	}
	if !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrCreateCourse
	}

	lvl := req.LvlOfDiff
	switch lvl {
	case consts.LevelBeginner, consts.LevelIntermediate, consts.LevelAdvanced:
	default:
		lvl = consts.LevelBeginner
	}

	c := &course.Course{
		Title:       req.Title,
		Description: req.Description,
		LvlOfDiff:   lvl,
		ImageLink:   imageLink,
		VideoLink:   videoLink,
		Published:   req.Published,
		UserID:      req.UserId,
	}
	err = s.CourseMapper.Insert(ctx, c)
	if err != nil {
		log.CtxError(ctx, "创建课程失败: %v", err)
		return nil, consts.ErrCreateCourse
	}

	return &web.AddCourseResp{
		Code: 0,
		Msg:  "Course Added",
		Data: toCourseInfo(c),
	}, nil
}

// GetCourse 按 id 查询课程
func (s *CourseService) GetCourse(ctx context.Context, req *web.GetCourseReq) (*web.GetCourseResp, error) {
	c, err := s.CourseMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrCourseNotFound
	}
	return &web.GetCourseResp{
		Code: 0,
		Msg:  "success",
		Data: toCourseInfo(c),
	}, nil
}

func (s *CourseService) ListAllCourses(ctx context.Context) (*web.ListCoursesResp, error) {
	courses, err := s.CourseMapper.FindAll(ctx)
	if err != nil {
		log.CtxError(ctx, "获取课程列表失败: %v", err)
		return nil, consts.ErrCourseNotFound
	}
	return &web.ListCoursesResp{
		Code: 0,
		Msg:  "success",
		Data: lo.Map(courses, func(c *course.Course, _ int) *web.CourseInfo {
			return toCourseInfo(c)
		}),
	}, nil
}

// ListCoursesByUser 按创建者查询课程
func (s *CourseService) ListCoursesByUser(ctx context.Context, req *web.GetCourseReq) (*web.ListCoursesResp, error) {
	courses, err := s.CourseMapper.FindByUser(ctx, req.Id)
	if err != nil {
		log.CtxError(ctx, "获取用户课程失败: %v", err)
		return nil, consts.ErrCourseNotFound
	}
	return &web.ListCoursesResp{
		Code: 0,
		Msg:  "success",
		Data: lo.Map(courses, func(c *course.Course, _ int) *web.CourseInfo {
			return toCourseInfo(c)
		}),
	}, nil
}

// AddEnrolledCourse 选课, 已选过时直接返回成功
func (s *CourseService) AddEnrolledCourse(ctx context.Context, req *web.AddEnrolledCourseReq) (*web.AddEnrolledCourseResp, error) {
	existing, err := s.EnrollmentMapper.FindOneByCourseAndUser(ctx, req.Id, req.UserID)
	if err == nil && existing != nil {
		return &web.AddEnrolledCourseResp{
			Code: 0,
			Msg:  "Course already Enrolled",
			Data: toEnrollmentInfo(existing),
		}, nil
	}
	if err != nil && !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrCall
	}

	e := &course.EnrolledCourse{
		CourseID: req.Id,
		UserID:   req.UserID,
	}
	err = s.EnrollmentMapper.Insert(ctx, e)
	if err != nil {
		log.CtxError(ctx, "选课失败: %v", err)
		return nil, consts.ErrCall
	}

	return &web.AddEnrolledCourseResp{
		Code: 0,
		Msg:  "Course Enrolled",
		Data: toEnrollmentInfo(e),
	}, nil
}

func (s *CourseService) ListEnrolledCourses(ctx context.Context, req *web.GetEnrolledCourseReq) (*web.ListEnrollmentsResp, error) {
	enrollments, err := s.EnrollmentMapper.FindByUser(ctx, req.Id)
	if err != nil {
		log.CtxError(ctx, "获取选课记录失败: %v", err)
		return nil, consts.ErrCourseNotFound
	}
	return &web.ListEnrollmentsResp{
		Code: 0,
		Msg:  "success",
		Data: lo.Map(enrollments, func(e *course.EnrolledCourse, _ int) *web.EnrollmentInfo {
			return toEnrollmentInfo(e)
		}),
	}, nil
}

func toCourseInfo(c *course.Course) *web.CourseInfo {
	info := new(web.CourseInfo)
	// 同名字段批量拷贝, id和时间戳单独处理
	if err := copier.Copy(info, c); err != nil {
		log.Error("课程信息拷贝失败: %v", err)
	}
	info.Id = c.ID.Hex()
	info.UserId = c.UserID
	info.CreateTime = c.CreateTime.Unix()
	return info
}

func toEnrollmentInfo(e *course.EnrolledCourse) *web.EnrollmentInfo {
	return &web.EnrollmentInfo{
		Id:         e.ID.Hex(),
		CourseID:   e.CourseID,
		UserID:     e.UserID,
		CreateTime: e.CreateTime.Unix(),
	}
}
