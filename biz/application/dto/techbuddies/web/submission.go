package web

type SubmissionInfo struct {
	Id          string `json:"id"`
	Kind        string `json:"kind"`
	OwnerId     string `json:"ownerId"`
	CourseId    string `json:"courseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PayloadLink string `json:"payloadLink,omitempty"`
	RepoUrl     string `json:"repoUrl,omitempty"`
	ContentId   int64  `json:"contentId,omitempty"`
	Version     int64  `json:"version,omitempty"`
	Status      string `json:"status"`
	CreateTime  int64  `json:"createTime"`
	UpdateTime  int64  `json:"updateTime"`
}

// CreateSubmissionReq 视频/笔记走 multipart(payload 文件在控制器里提取),
// 文档/项目直接传 JSON
type CreateSubmissionReq struct {
	OwnerId     string `json:"ownerId" form:"ownerId"`
	CourseId    string `json:"courseId" form:"courseId"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	PayloadLink string `json:"payloadLink" form:"payloadLink"`
	RepoUrl     string `json:"repoUrl" form:"repoUrl"`
	ContentId   int64  `json:"contentId" form:"contentId"`
}

type CreateSubmissionResp struct {
	Code int64           `json:"code"`
	Msg  string          `json:"msg"`
	Data *SubmissionInfo `json:"data,omitempty"`
}

// UpdateStatusReq 字段名与既有前端约定保持一致
type UpdateStatusReq struct {
	Id        string `json:"id" vd:"len($)>0"`
	StatusMsg string `json:"Statusmsg" vd:"len($)>0"`
}

type UpdateStatusResp struct {
	Code int64           `json:"code"`
	Msg  string          `json:"msg"`
	Data *SubmissionInfo `json:"data,omitempty"`
}

// ListPublishedReq 按课程查询已发布(Accepted)投稿
type ListPublishedReq struct {
	Id string `path:"id" vd:"len($)>0"`
}

// ListByOwnerReq 按作者查询全部状态投稿
type ListByOwnerReq struct {
	Id string `path:"id" vd:"len($)>0"`
}

type ListSubmissionsResp struct {
	Code int64             `json:"code"`
	Msg  string            `json:"msg"`
	Data []*SubmissionInfo `json:"data"`
}

// UpdateDocContentReq 文档内容编辑, 每次调用版本号+1
type UpdateDocContentReq struct {
	Id          string  `json:"id" vd:"len($)>0"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	PayloadLink *string `json:"payloadLink,omitempty"`
}

type UpdateDocContentResp struct {
	Code int64           `json:"code"`
	Msg  string          `json:"msg"`
	Data *SubmissionInfo `json:"data,omitempty"`
}
