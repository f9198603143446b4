package web

type MessageInfo struct {
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

type GroupInfo struct {
	GroupId    int64          `json:"groupId"`
	GroupName  string         `json:"groupName"`
	Members    []string       `json:"members"`
	Messages   []*MessageInfo `json:"messages"`
	CreateTime int64          `json:"createTime"`
}

type CreateGroupReq struct {
	GroupName string   `json:"groupName" vd:"len($)>0"`
	Members   []string `json:"members"`
}

type CreateGroupResp struct {
	Code int64      `json:"code"`
	Msg  string     `json:"msg"`
	Data *GroupInfo `json:"data,omitempty"`
}

type SendMessageReq struct {
	GroupId int64  `json:"groupId" vd:"$>0"`
	Sender  string `json:"sender" vd:"len($)>0"`
	Content string `json:"content" vd:"len($)>0"`
}

type SendMessageResp struct {
	Code int64      `json:"code"`
	Msg  string     `json:"msg"`
	Data *GroupInfo `json:"data,omitempty"`
}
