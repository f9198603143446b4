package web

// Response 统一响应信封
type Response struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}

type UserInfo struct {
	Id        string `json:"id"`
	Username  string `json:"Username"`
	Email     string `json:"Email"`
	FirstName string `json:"FirstName,omitempty"`
	LastName  string `json:"LastName,omitempty"`
}

type RegisterReq struct {
	FirstName string `json:"FirstName" form:"FirstName"`
	LastName  string `json:"LastName" form:"LastName"`
	Username  string `json:"Username" form:"Username" vd:"len($)>0"`
	Email     string `json:"Email" form:"Email" vd:"len($)>0"`
	Password  string `json:"Password" form:"Password" vd:"len($)>0"`
}

type RegisterResp struct {
	Code int64     `json:"code"`
	Msg  string    `json:"msg"`
	Data *UserInfo `json:"data,omitempty"`
}

// LoginReq Data 字段既可以是邮箱也可以是用户名
type LoginReq struct {
	Data     string `json:"Data" form:"Data" vd:"len($)>0"`
	Password string `json:"Password" form:"Password" vd:"len($)>0"`
}

type LoginResp struct {
	Code         int64     `json:"code"`
	Msg          string    `json:"msg"`
	AccessToken  string    `json:"accessToken,omitempty"`
	AccessExpire int64     `json:"accessExpire,omitempty"`
	Data         *UserInfo `json:"data,omitempty"`
}
