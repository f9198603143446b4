package group

import (
	"context"
	"errors"
	"time"

	"techbuddies/biz/infrastructure/config"
	"techbuddies/biz/infrastructure/consts"
	"techbuddies/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	prefixGroupCacheKey = "cache:group"
	GroupCollectionName = "group"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewGroupMongoMapper collection: %s", GroupCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, GroupCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, g *Group) error {
	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
		g.CreateTime = time.Now()
		g.UpdateTime = g.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, g)
	return err
}

// Update 整体覆盖写回, 并发追加消息时为 last-write-wins
func (m *MongoMapper) Update(ctx context.Context, g *Group) error {
	g.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, g.ID, bson.M{"$set": g})
	return err
}

func (m *MongoMapper) FindOneByGroupID(ctx context.Context, groupID int64) (*Group, error) {
	var g Group
	err := m.conn.FindOneNoCache(ctx, &g, bson.M{
		consts.GroupID: groupID,
	})
	switch {
	case err == nil:
		return &g, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}
