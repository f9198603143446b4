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
	prefixEnrollmentCacheKey = "cache:enrolled_course"
	EnrollmentCollectionName = "enrolled_course"
)

type EnrollmentMongoMapper struct {
	conn *monc.Model
}

func NewEnrollmentMongoMapper(config *config.Config) *EnrollmentMongoMapper {
	log.Info("NewEnrollmentMongoMapper collection: %s", EnrollmentCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, EnrollmentCollectionName, config.Cache)
	return &EnrollmentMongoMapper{
		conn: conn,
	}
}

func (m *EnrollmentMongoMapper) Insert(ctx context.Context, e *EnrolledCourse) error {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
		e.CreateTime = time.Now()
		e.UpdateTime = e.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, e)
	return err
}

func (m *EnrollmentMongoMapper) FindOneByCourseAndUser(ctx context.Context, courseID, userID string) (*EnrolledCourse, error) {
	var e EnrolledCourse
	err := m.conn.FindOneNoCache(ctx, &e, bson.M{
		consts.CourseID: courseID,
		consts.UserID:   userID,
	})
	switch {
	case err == nil:
		return &e, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *EnrollmentMongoMapper) FindByUser(ctx context.Context, userID string) ([]*EnrolledCourse, error) {
	var enrollments []*EnrolledCourse
	err := m.conn.Find(ctx, &enrollments, bson.M{consts.UserID: userID})
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}
