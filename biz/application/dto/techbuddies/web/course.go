package web

type CourseInfo struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	LvlOfDiff   string `json:"lvlOfDiff"`
	ImageLink   string `json:"imageLink"`
	VideoLink   string `json:"videoLink"`
	Published   bool   `json:"published"`
	UserId      string `json:"userId"`
	CreateTime  int64  `json:"createTime"`
}

// AddCourseReq 图片和视频文件从 multipart 中单独提取
type AddCourseReq struct {
	Title       string `form:"title" vd:"len($)>0"`
	Description string `form:"description" vd:"len($)>0"`
	LvlOfDiff   string `form:"lvlOfDiff"`
	Published   bool   `form:"published"`
	UserId      string `form:"userId"`
}

type AddCourseResp struct {
	Code int64       `json:"code"`
	Msg  string      `json:"msg"`
	Data *CourseInfo `json:"data,omitempty"`
}

type GetCourseReq struct {
	Id string `path:"id" vd:"len($)>0"`
}

type GetCourseResp struct {
	Code int64       `json:"code"`
	Msg  string      `json:"msg"`
	Data *CourseInfo `json:"data,omitempty"`
}

type ListCoursesResp struct {
	Code int64         `json:"code"`
	Msg  string        `json:"msg"`
	Data []*CourseInfo `json:"data"`
}

type EnrollmentInfo struct {
	Id         string `json:"id"`
	CourseID   string `json:"courseID"`
	UserID     string `json:"userID"`
	CreateTime int64  `json:"createTime"`
}

type AddEnrolledCourseReq struct {
	Id     string `json:"id" vd:"len($)>0"`
	UserID string `json:"userID" vd:"len($)>0"`
}

type AddEnrolledCourseResp struct {
	Code int64           `json:"code"`
	Msg  string          `json:"msg"`
	Data *EnrollmentInfo `json:"data,omitempty"`
}

type GetEnrolledCourseReq struct {
	Id string `path:"id" vd:"len($)>0"`
}

type ListEnrollmentsResp struct {
	Code int64             `json:"code"`
	Msg  string            `json:"msg"`
	Data []*EnrollmentInfo `json:"data"`
}
