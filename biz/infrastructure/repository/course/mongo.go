package course

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
	prefixCourseCacheKey = "cache:course"
	CourseCollectionName = "course"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewCourseMongoMapper collection: %s", CourseCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CourseCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, c *Course) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
		c.CreateTime = time.Now()
		c.UpdateTime = c.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, c)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Course
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &c, nil
}

func (m *MongoMapper) FindOneByTitle(ctx context.Context, title string) (*Course, error) {
	var c Course
	err := m.conn.FindOneNoCache(ctx, &c, bson.M{
		"title": title,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Course, error) {
	var courses []*Course
	err := m.conn.Find(ctx, &courses, bson.M{})
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (m *MongoMapper) FindByUser(ctx context.Context, userID string) ([]*Course, error) {
	var courses []*Course
	err := m.conn.Find(ctx, &courses, bson.M{consts.UserID: userID})
	if err != nil {
		return nil, err
	}
	return courses, nil
}
