package group

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group 持久化的聊天群组, 区别于实时广播的 Room
// GroupID 取创建时刻的毫秒时间戳, 不强制唯一
type Group struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GroupID    int64              `bson:"group_id" json:"groupId"`
	Name       string             `bson:"name" json:"groupName"`
	Members    []string           `bson:"members" json:"members"`
	Messages   []Message          `bson:"messages" json:"messages"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}

// Message 群消息, 只追加不修改
type Message struct {
	Sender    string    `bson:"sender" json:"sender"`
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
