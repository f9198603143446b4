package topic

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
	prefixTopicCacheKey = "cache:topic"
	TopicCollectionName = "topic"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewTopicMongoMapper collection: %s", TopicCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, TopicCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, t *Topic) error {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
		t.CreateTime = time.Now()
		t.UpdateTime = t.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, t)
	return err
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Topic, error) {
	var topics []*Topic
	err := m.conn.Find(ctx, &topics, bson.M{})
	if err != nil {
		return nil, err
	}
	return topics, nil
}

func (m *MongoMapper) FindByTopicID(ctx context.Context, topicID int64) ([]*Topic, error) {
	var topics []*Topic
	err := m.conn.Find(ctx, &topics, bson.M{consts.TopicID: topicID}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: 1},
	})
	if err != nil {
		return nil, err
	}
	return topics, nil
}
