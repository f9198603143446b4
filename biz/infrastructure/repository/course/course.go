package course

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	LvlOfDiff   string             `bson:"lvl_of_diff" json:"lvlOfDiff"`
	ImageLink   string             `bson:"image_link" json:"imageLink"`
	VideoLink   string             `bson:"video_link" json:"videoLink"`
	Published   bool               `bson:"published" json:"published"`
	UserID      string             `bson:"user_id" json:"userId"`
	CreateTime  time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime  time.Time          `bson:"update_time" json:"updateTime"`
}

type EnrolledCourse struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID   string             `bson:"course_id" json:"courseID"`
	UserID     string             `bson:"user_id" json:"userID"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
