package provider

import (
	"techbuddies/biz/application/service"
	"techbuddies/biz/infrastructure/cache"
	"techbuddies/biz/infrastructure/config"
	"techbuddies/biz/infrastructure/repository/course"
	"techbuddies/biz/infrastructure/repository/group"
	"techbuddies/biz/infrastructure/repository/submission"
	"techbuddies/biz/infrastructure/repository/topic"
	"techbuddies/biz/infrastructure/repository/user"
	"techbuddies/biz/infrastructure/storage"
	"techbuddies/biz/infrastructure/ws"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config            *config.Config
	UserService       service.IUserService
	CourseService     service.ICourseService
	SubmissionService service.ISubmissionService
	TopicService      service.ITopicService
	GroupService      service.IGroupService
	MediaClient       *storage.MediaClient
	Hub               *ws.Hub
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.CourseServiceSet,
	service.SubmissionServiceSet,
	service.TopicServiceSet,
	service.GroupServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	course.NewMongoMapper,
	course.NewEnrollmentMongoMapper,
	submission.NewMongoMapper,
	wire.Bind(new(service.SubmissionStore), new(*submission.MongoMapper)),
	topic.NewMongoMapper,
	group.NewMongoMapper,
	wire.Bind(new(service.GroupStore), new(*group.MongoMapper)),
	cache.NewPublishCacheMapper,
	wire.Bind(new(service.PublishCache), new(*cache.PublishCacheMapper)),
	storage.NewMediaClient,
	ws.NewHub,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
