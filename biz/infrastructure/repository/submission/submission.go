package submission

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission 统一的投稿记录, Kind 区分视频/笔记/文档/项目
// 文档类投稿携带 ContentID(发布列表排序键)和 Version(内容编辑自增)
// 项目类投稿以 RepoURL 代替 PayloadLink
type Submission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Kind        string             `bson:"kind" json:"kind"`
	OwnerID     string             `bson:"owner_id" json:"ownerId"`
	CourseID    string             `bson:"course_id" json:"courseId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	PayloadLink string             `bson:"payload_link,omitempty" json:"payloadLink,omitempty"`
	RepoURL     string             `bson:"repo_url,omitempty" json:"repoUrl,omitempty"`
	ContentID   int64              `bson:"content_id,omitempty" json:"contentId,omitempty"`
	Version     int64              `bson:"version,omitempty" json:"version,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreateTime  time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime  time.Time          `bson:"update_time" json:"updateTime"`
}
