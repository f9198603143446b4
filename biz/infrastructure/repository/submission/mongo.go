package submission

import (
	"context"
	"time"

	"techbuddies/biz/infrastructure/config"
	"techbuddies/biz/infrastructure/consts"
	"techbuddies/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixSubmissionCacheKey = "cache:submission"
	SubmissionCollectionName = "submission"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewSubmissionMongoMapper collection: %s", SubmissionCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, SubmissionCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, s *Submission) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, s)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, s *Submission) error {
	s.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, s.ID, bson.M{"$set": s})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Submission
	err = m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

// UpdateStatus 无条件覆盖审核状态
func (m *MongoMapper) UpdateStatus(ctx context.Context, id string, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$set": bson.M{
			consts.Status:     status,
			consts.UpdateTime: time.Now(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return consts.ErrNotFound
	}
	return nil
}

// FindByOwner 按作者查询, 不过滤状态, 保持插入顺序
func (m *MongoMapper) FindByOwner(ctx context.Context, ownerID string, kind string) ([]*Submission, error) {
	var submissions []*Submission
	filter := bson.M{
		consts.OwnerID: ownerID,
		consts.Kind:    kind,
	}
	err := m.conn.Find(ctx, &submissions, filter)
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// FindPublished 按课程查询 Accepted 投稿, 文档类按 content_id 升序
func (m *MongoMapper) FindPublished(ctx context.Context, courseID string, kind string) ([]*Submission, error) {
	var submissions []*Submission
	filter := bson.M{
		consts.CourseID: courseID,
		consts.Kind:     kind,
		consts.Status:   consts.StatusAccepted,
	}
	opts := &options.FindOptions{}
	if kind == consts.KindDoc {
		opts.Sort = bson.M{consts.ContentID: 1}
	}
	err := m.conn.Find(ctx, &submissions, filter, opts)
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
