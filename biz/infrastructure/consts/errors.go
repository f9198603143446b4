package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// Code 返回错误码
func (en *Errno) Code() codes.Code {
	return en.code
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 用户相关错误
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(codes.Code(1000), errors.New("not authentication"))
	ErrSignUp            = NewErrno(codes.Code(1001), errors.New("Register Failed"))
	ErrSignIn            = NewErrno(codes.Code(1002), errors.New("Customer Login Failed"))
	ErrEmailInUse        = NewErrno(codes.AlreadyExists, errors.New("Email already in use"))
	ErrUsernameInUse     = NewErrno(codes.AlreadyExists, errors.New("Username already in use"))
	ErrPasswordIncorrect = NewErrno(codes.Code(1003), errors.New("Password Incorrect"))
)

// 课程相关错误
var (
	ErrCourseExist     = NewErrno(codes.AlreadyExists, errors.New("Course already Exist"))
	ErrCourseNotFound  = NewErrno(codes.NotFound, errors.New("Can't Find Course"))
	ErrCreateCourse    = NewErrno(codes.Code(1101), errors.New("Course Can't Added"))
	ErrMediaRequired   = NewErrno(codes.InvalidArgument, errors.New("Both image and video files are required."))
	ErrAlreadyEnrolled = NewErrno(codes.AlreadyExists, errors.New("Course already Enrolled"))
)

// 投稿审核相关错误
var (
	ErrCreateSubmission = NewErrno(codes.Code(1201), errors.New("提交内容失败，请重试"))
	ErrUpdateStatus     = NewErrno(codes.Code(1202), errors.New("更新审核状态失败"))
	ErrInvalidStatus    = NewErrno(codes.InvalidArgument, errors.New("无效的审核状态"))
	ErrInvalidKind      = NewErrno(codes.InvalidArgument, errors.New("无效的内容类型"))
	ErrGetSubmissions   = NewErrno(codes.Code(1203), errors.New("获取投稿列表失败"))
)

// 群组聊天相关错误
var (
	ErrCreateGroup = NewErrno(codes.Code(1301), errors.New("创建群组失败"))
	ErrSendMessage = NewErrno(codes.Code(1302), errors.New("发送消息失败"))
)

// 主题文档相关错误
var (
	ErrCreateTopic  = NewErrno(codes.Code(1401), errors.New("topic add failed"))
	ErrNoTopics     = NewErrno(codes.NotFound, errors.New("No topics found"))
	ErrMissingTopic = NewErrno(codes.InvalidArgument, errors.New("Missing required parameter: topicTitle"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("参数错误"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("Please Try Again"))
	ErrUpload        = NewErrno(codes.Unavailable, errors.New("上传媒体文件失败，请重试"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("无效的id "))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("更新失败"))
)
