package basic

// UserMeta 从 JWT 中提取的调用方身份, 核心流程只透传不做策略校验
type UserMeta struct {
	UserId   string `json:"userId" mapstructure:"userId"`
	DeviceId string `json:"deviceId" mapstructure:"deviceId"`
	AppId    int64  `json:"appId" mapstructure:"appId"`

	SessionUserId   string `json:"sessionUserId" mapstructure:"sessionUserId"`
	SessionDeviceId string `json:"sessionDeviceId" mapstructure:"sessionDeviceId"`
	SessionAppId    int64  `json:"sessionAppId" mapstructure:"sessionAppId"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}
