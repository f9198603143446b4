package consts

var PageSize int64 = 10

// 数据库相关
const (
	ID         = "_id"
	UserID     = "user_id"
	OwnerID    = "owner_id"
	CourseID   = "course_id"
	Kind       = "kind"
	Status     = "status"
	ContentID  = "content_id"
	GroupID    = "group_id"
	CreateTime = "create_time"
	UpdateTime = "update_time"
	TopicID    = "topic_id"
	TopicTitle = "topic_title"
)

// 审核状态，投稿创建后默认为 Pending
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// 投稿内容类型
const (
	KindVideo   = "video"
	KindNote    = "note"
	KindDoc     = "doc"
	KindProject = "project"
)

// 课程难度
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// 实时事件
const (
	EventJoinRoom       = "join_room"
	EventSendMessage    = "send_message"
	EventReceiveMessage = "receive_message"
)

// 默认值
const (
	MediaFolder  = "Techbuddies"
	DocBaseVer   = 1
	PublishedTTL = 30 // 发布列表缓存秒数
)
