package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"techbuddies/biz/infrastructure/config"
	"techbuddies/biz/infrastructure/consts"
	"techbuddies/biz/infrastructure/redis"
	"techbuddies/biz/infrastructure/repository/submission"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

// 审核通过后列表很快可见即可, TTL 给得很短
const publishCachePrefix = "publish_list"

type IPublishCacheMapper interface {
	Get(ctx context.Context, courseID, kind string) ([]*submission.Submission, error)
	Set(ctx context.Context, courseID, kind string, data []*submission.Submission) error
	Delete(ctx context.Context, courseID, kind string) error
}

type PublishCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewPublishCacheMapper(config *config.Config) *PublishCacheMapper {
	return &PublishCacheMapper{
		rds: redis.GetRedis(config),
	}
}

// Get 从缓存获取课程的已发布投稿列表
func (m *PublishCacheMapper) Get(ctx context.Context, courseID, kind string) ([]*submission.Submission, error) {
	cacheKey := m.buildCacheKey(courseID, kind)

	cachedData, err := m.rds.GetCtx(ctx, cacheKey)
	if err != nil {
		return nil, err
	}

	if cachedData == "" {
		return nil, fmt.Errorf("cache miss")
	}

	var result []*submission.Submission
	if err := json.Unmarshal([]byte(cachedData), &result); err != nil {
		return nil, fmt.Errorf("unmarshal cached data failed: %w", err)
	}

	return result, nil
}

// Set 将已发布投稿列表存入缓存
func (m *PublishCacheMapper) Set(ctx context.Context, courseID, kind string, data []*submission.Submission) error {
	cacheKey := m.buildCacheKey(courseID, kind)

	resultBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal data failed: %w", err)
	}

	return m.rds.SetexCtx(ctx, cacheKey, string(resultBytes), consts.PublishedTTL)
}

// Delete 审核状态变化后使缓存失效
func (m *PublishCacheMapper) Delete(ctx context.Context, courseID, kind string) error {
	cacheKey := m.buildCacheKey(courseID, kind)
	_, err := m.rds.DelCtx(ctx, cacheKey)
	return err
}

// buildCacheKey 构造缓存key
func (m *PublishCacheMapper) buildCacheKey(courseID, kind string) string {
	return fmt.Sprintf("%s:%s:%s", publishCachePrefix, kind, courseID)
}
