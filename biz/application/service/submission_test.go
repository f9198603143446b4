package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"techbuddies/biz/application/dto/techbuddies/web"
	"techbuddies/biz/infrastructure/consts"
	"techbuddies/biz/infrastructure/repository/submission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeSubmissionStore 内存版持久层, 行为对齐 MongoMapper
type fakeSubmissionStore struct {
	data      map[string]*submission.Submission
	order     []string
	findCalls int
}

func newFakeSubmissionStore() *fakeSubmissionStore {
	return &fakeSubmissionStore{data: make(map[string]*submission.Submission)}
}

func (f *fakeSubmissionStore) Insert(_ context.Context, s *submission.Submission) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	cp := *s
	f.data[s.ID.Hex()] = &cp
	f.order = append(f.order, s.ID.Hex())
	return nil
}

func (f *fakeSubmissionStore) Update(_ context.Context, s *submission.Submission) error {
	s.UpdateTime = time.Now()
	cp := *s
	f.data[s.ID.Hex()] = &cp
	return nil
}

func (f *fakeSubmissionStore) FindOne(_ context.Context, id string) (*submission.Submission, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	s, ok := f.data[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSubmissionStore) UpdateStatus(_ context.Context, id string, status string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return consts.ErrInvalidObjectId
	}
	s, ok := f.data[id]
	if !ok {
		return consts.ErrNotFound
	}
	s.Status = status
	s.UpdateTime = time.Now()
	return nil
}

func (f *fakeSubmissionStore) FindByOwner(_ context.Context, ownerID string, kind string) ([]*submission.Submission, error) {
	var out []*submission.Submission
	for _, id := range f.order {
		s := f.data[id]
		if s.OwnerID == ownerID && s.Kind == kind {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeSubmissionStore) FindPublished(_ context.Context, courseID string, kind string) ([]*submission.Submission, error) {
	f.findCalls++
	var out []*submission.Submission
	for _, id := range f.order {
		s := f.data[id]
		if s.CourseID == courseID && s.Kind == kind && s.Status == consts.StatusAccepted {
			cp := *s
			out = append(out, &cp)
		}
	}
	if kind == consts.KindDoc {
		sort.Slice(out, func(i, j int) bool { return out[i].ContentID < out[j].ContentID })
	}
	return out, nil
}

// fakePublishCache 内存版发布列表缓存
type fakePublishCache struct {
	data map[string][]*submission.Submission
}

func newFakePublishCache() *fakePublishCache {
	return &fakePublishCache{data: make(map[string][]*submission.Submission)}
}

func (f *fakePublishCache) key(courseID, kind string) string { return kind + ":" + courseID }

func (f *fakePublishCache) Get(_ context.Context, courseID, kind string) ([]*submission.Submission, error) {
	v, ok := f.data[f.key(courseID, kind)]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return v, nil
}

func (f *fakePublishCache) Set(_ context.Context, courseID, kind string, data []*submission.Submission) error {
	f.data[f.key(courseID, kind)] = data
	return nil
}

func (f *fakePublishCache) Delete(_ context.Context, courseID, kind string) error {
	delete(f.data, f.key(courseID, kind))
	return nil
}

func newTestSubmissionService() (*SubmissionService, *fakeSubmissionStore, *fakePublishCache) {
	store := newFakeSubmissionStore()
	cache := newFakePublishCache()
	return &SubmissionService{SubmissionMapper: store, PublishCache: cache}, store, cache
}

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Accepted", consts.StatusAccepted, true},
		{"accepted", consts.StatusAccepted, true},
		{"ACCEPTED", consts.StatusAccepted, true},
		{" rejected ", consts.StatusRejected, true},
		{"Pending", consts.StatusPending, true},
		{"approved", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, err := NormalizeStatus(c.in)
		if c.ok {
			assert.NoError(t, err, c.in)
			assert.Equal(t, c.want, got)
		} else {
			assert.ErrorIs(t, err, consts.ErrInvalidStatus, c.in)
		}
	}
}

func TestCreateForcesPending(t *testing.T) {
	svc, _, _ := newTestSubmissionService()

	resp, err := svc.Create(context.Background(), consts.KindVideo, &web.CreateSubmissionReq{
		OwnerId:  "u1",
		CourseId: "c1",
		Title:    "intro",
	}, "https://cdn/v.mp4")
	require.NoError(t, err)
	assert.Equal(t, consts.StatusPending, resp.Data.Status)
	assert.Equal(t, "https://cdn/v.mp4", resp.Data.PayloadLink)
	assert.NotEmpty(t, resp.Data.Id)
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newTestSubmissionService()

	_, err := svc.Create(context.Background(), "image", &web.CreateSubmissionReq{OwnerId: "u1", CourseId: "c1"}, "")
	assert.ErrorIs(t, err, consts.ErrInvalidKind)

	_, err = svc.Create(context.Background(), consts.KindVideo, &web.CreateSubmissionReq{CourseId: "c1"}, "")
	assert.ErrorIs(t, err, consts.ErrInvalidParams)

	_, err = svc.Create(context.Background(), consts.KindVideo, &web.CreateSubmissionReq{OwnerId: "u1"}, "")
	assert.ErrorIs(t, err, consts.ErrInvalidParams)
}

func TestCreateDocStartsAtBaseVersion(t *testing.T) {
	svc, _, _ := newTestSubmissionService()

	resp, err := svc.Create(context.Background(), consts.KindDoc, &web.CreateSubmissionReq{
		OwnerId:     "u1",
		CourseId:    "c1",
		Title:       "guide",
		PayloadLink: "hello world",
		ContentId:   3,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(consts.DocBaseVer), resp.Data.Version)
	assert.Equal(t, int64(3), resp.Data.ContentId)
}

func TestCreateProjectKeepsRepoURL(t *testing.T) {
	svc, _, _ := newTestSubmissionService()

	resp, err := svc.Create(context.Background(), consts.KindProject, &web.CreateSubmissionReq{
		OwnerId:  "u1",
		CourseId: "c1",
		RepoUrl:  "https://github.com/u1/demo",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/u1/demo", resp.Data.RepoUrl)
	assert.Empty(t, resp.Data.PayloadLink)
}

func TestSetStatus(t *testing.T) {
	svc, _, _ := newTestSubmissionService()

	created, err := svc.Create(context.Background(), consts.KindVideo, &web.CreateSubmissionReq{
		OwnerId: "u1", CourseId: "c1",
	}, "link")
	require.NoError(t, err)

	resp, err := svc.SetStatus(context.Background(), &web.UpdateStatusReq{Id: created.Data.Id, StatusMsg: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, consts.StatusAccepted, resp.Data.Status)

	// 重复设置同一状态不报错
	resp, err = svc.SetStatus(context.Background(), &web.UpdateStatusReq{Id: created.Data.Id, StatusMsg: "Accepted"})
	require.NoError(t, err)
	assert.Equal(t, consts.StatusAccepted, resp.Data.Status)

	// Accepted 也可以回退, 不限制迁移方向
	resp, err = svc.SetStatus(context.Background(), &web.UpdateStatusReq{Id: created.Data.Id, StatusMsg: "pending"})
	require.NoError(t, err)
	assert.Equal(t, consts.StatusPending, resp.Data.Status)
}

// brokenSubmissionStore 模拟底层写失败
type brokenSubmissionStore struct {
	*fakeSubmissionStore
}

func (b *brokenSubmissionStore) UpdateStatus(_ context.Context, _ string, _ string) error {
	return errors.New("connection reset")
}

func TestSetStatusPersistenceFailure(t *testing.T) {
	store := &brokenSubmissionStore{newFakeSubmissionStore()}
	svc := &SubmissionService{SubmissionMapper: store, PublishCache: newFakePublishCache()}

	_, err := svc.SetStatus(context.Background(), &web.UpdateStatusReq{
		Id:        primitive.NewObjectID().Hex(),
		StatusMsg: "accepted",
	})
	assert.ErrorIs(t, err, consts.ErrUpdateStatus)
}

func TestSetStatusErrors(t *testing.T) {
	svc, _, _ := newTestSubmissionService()

	_, err := svc.SetStatus(context.Background(), &web.UpdateStatusReq{Id: primitive.NewObjectID().Hex(), StatusMsg: "accepted"})
	assert.ErrorIs(t, err, consts.ErrNotFound)

	_, err = svc.SetStatus(context.Background(), &web.UpdateStatusReq{Id: "not-hex", StatusMsg: "accepted"})
	assert.ErrorIs(t, err, consts.ErrInvalidObjectId)

	created, err := svc.Create(context.Background(), consts.KindVideo, &web.CreateSubmissionReq{OwnerId: "u1", CourseId: "c1"}, "link")
	require.NoError(t, err)
	_, err = svc.SetStatus(context.Background(), &web.UpdateStatusReq{Id: created.Data.Id, StatusMsg: "approved"})
	assert.ErrorIs(t, err, consts.ErrInvalidStatus)
}

func TestListPublishedFiltersAccepted(t *testing.T) {
	svc, _, _ := newTestSubmissionService()
	ctx := context.Background()

	a, err := svc.Create(ctx, consts.KindVideo, &web.CreateSubmissionReq{OwnerId: "u1", CourseId: "c1", Title: "a"}, "l1")
	require.NoError(t, err)
	_, err = svc.Create(ctx, consts.KindVideo, &web.CreateSubmissionReq{OwnerId: "u2", CourseId: "c1", Title: "b"}, "l2")
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, &web.UpdateStatusReq{Id: a.Data.Id, StatusMsg: "accepted"})
	require.NoError(t, err)

	resp, err := svc.ListPublished(ctx, consts.KindVideo, &web.ListPublishedReq{Id: "c1"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "a", resp.Data[0].Title)

	// 作者视角看到全部状态
	owner, err := svc.ListByOwner(ctx, consts.KindVideo, &web.ListByOwnerReq{Id: "u2"})
	require.NoError(t, err)
	require.Len(t, owner.Data, 1)
	assert.Equal(t, consts.StatusPending, owner.Data[0].Status)
}

func TestListPublishedCacheFirst(t *testing.T) {
	svc, store, _ := newTestSubmissionService()
	ctx := context.Background()

	a, err := svc.Create(ctx, consts.KindNote, &web.CreateSubmissionReq{OwnerId: "u1", CourseId: "c1"}, "l1")
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, &web.UpdateStatusReq{Id: a.Data.Id, StatusMsg: "accepted"})
	require.NoError(t, err)

	_, err = svc.ListPublished(ctx, consts.KindNote, &web.ListPublishedReq{Id: "c1"})
	require.NoError(t, err)
	assert.Equal(t, 1, store.findCalls)

	// 第二次命中缓存, 不落库
	_, err = svc.ListPublished(ctx, consts.KindNote, &web.ListPublishedReq{Id: "c1"})
	require.NoError(t, err)
	assert.Equal(t, 1, store.findCalls)

	// 状态变化使缓存失效, 再查回源
	_, err = svc.SetStatus(ctx, &web.UpdateStatusReq{Id: a.Data.Id, StatusMsg: "rejected"})
	require.NoError(t, err)
	resp, err := svc.ListPublished(ctx, consts.KindNote, &web.ListPublishedReq{Id: "c1"})
	require.NoError(t, err)
	assert.Equal(t, 2, store.findCalls)
	assert.Empty(t, resp.Data)
}

func TestListPublishedDocOrderedByContentId(t *testing.T) {
	svc, _, _ := newTestSubmissionService()
	ctx := context.Background()

	for _, cid := range []int64{5, 1, 3} {
		resp, err := svc.Create(ctx, consts.KindDoc, &web.CreateSubmissionReq{
			OwnerId: "u1", CourseId: "c1", PayloadLink: "body", ContentId: cid,
		}, "")
		require.NoError(t, err)
		_, err = svc.SetStatus(ctx, &web.UpdateStatusReq{Id: resp.Data.Id, StatusMsg: "accepted"})
		require.NoError(t, err)
	}

	resp, err := svc.ListPublished(ctx, consts.KindDoc, &web.ListPublishedReq{Id: "c1"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, int64(1), resp.Data[0].ContentId)
	assert.Equal(t, int64(3), resp.Data[1].ContentId)
	assert.Equal(t, int64(5), resp.Data[2].ContentId)
}

func TestUpdateDocContent(t *testing.T) {
	svc, _, _ := newTestSubmissionService()
	ctx := context.Background()

	created, err := svc.Create(ctx, consts.KindDoc, &web.CreateSubmissionReq{
		OwnerId: "u1", CourseId: "c1", Title: "t1", PayloadLink: "v1", ContentId: 1,
	}, "")
	require.NoError(t, err)
	require.Equal(t, int64(1), created.Data.Version)

	body := "v2"
	resp, err := svc.UpdateDocContent(ctx, &web.UpdateDocContentReq{Id: created.Data.Id, PayloadLink: &body})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Data.Version)
	assert.Equal(t, "v2", resp.Data.PayloadLink)
	// 未提供的字段保持原值
	assert.Equal(t, "t1", resp.Data.Title)

	// 内容未变也自增版本
	resp, err = svc.UpdateDocContent(ctx, &web.UpdateDocContentReq{Id: created.Data.Id})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Data.Version)
}

func TestUpdateDocContentRejectsNonDoc(t *testing.T) {
	svc, _, _ := newTestSubmissionService()
	ctx := context.Background()

	created, err := svc.Create(ctx, consts.KindVideo, &web.CreateSubmissionReq{OwnerId: "u1", CourseId: "c1"}, "l")
	require.NoError(t, err)

	_, err = svc.UpdateDocContent(ctx, &web.UpdateDocContentReq{Id: created.Data.Id})
	assert.ErrorIs(t, err, consts.ErrInvalidKind)
}
