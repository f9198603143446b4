package topic

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Topic struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TopicID         int64              `bson:"topic_id" json:"topicId"`
	TopicTitle      string             `bson:"topic_title" json:"topicTitle"`
	SubTopicTitle   string             `bson:"sub_topic_title" json:"subTopicTitle"`
	SubTopicContent string             `bson:"sub_topic_content,omitempty" json:"subTopicContent"`
	CreateTime      time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime      time.Time          `bson:"update_time" json:"updateTime"`
}
