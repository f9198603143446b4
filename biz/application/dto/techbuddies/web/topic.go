package web

type TopicInfo struct {
	Id              string `json:"id"`
	TopicId         int64  `json:"topicId"`
	TopicTitle      string `json:"topicTitle"`
	SubTopicTitle   string `json:"subTopicTitle"`
	SubTopicContent string `json:"subTopicContent"`
	CreateTime      int64  `json:"createTime"`
}

type CreateTopicReq struct {
	TopicTitle      string `json:"topicTitle" form:"topicTitle" vd:"len($)>0"`
	SubTopicTitle   string `json:"subTopicTitle" form:"subTopicTitle" vd:"len($)>0"`
	SubTopicContent string `json:"subTopicContent" form:"subTopicContent"`
}

type ListTopicTitlesResp struct {
	Code int64    `json:"code"`
	Msg  string   `json:"msg"`
	Data []string `json:"Data"`
}

type ListSubTopicsReq struct {
	Id int64 `path:"id"`
}

type ListSubTopicsResp struct {
	Code int64        `json:"code"`
	Msg  string       `json:"msg"`
	Data []*TopicInfo `json:"Data"`
}
