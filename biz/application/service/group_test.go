package service

import (
	"context"
	"testing"
	"time"

	"techbuddies/biz/application/dto/techbuddies/web"
	"techbuddies/biz/infrastructure/consts"
	"techbuddies/biz/infrastructure/repository/group"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeGroupStore 内存版群组持久层
type fakeGroupStore struct {
	groups []*group.Group
}

func (f *fakeGroupStore) Insert(_ context.Context, g *group.Group) error {
	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
		g.CreateTime = time.Now()
		g.UpdateTime = g.CreateTime
	}
	cp := *g
	f.groups = append(f.groups, &cp)
	return nil
}

func (f *fakeGroupStore) Update(_ context.Context, g *group.Group) error {
	for i, old := range f.groups {
		if old.ID == g.ID {
			g.UpdateTime = time.Now()
			cp := *g
			f.groups[i] = &cp
			return nil
		}
	}
	return consts.ErrNotFound
}

func (f *fakeGroupStore) FindOneByGroupID(_ context.Context, groupID int64) (*group.Group, error) {
	for _, g := range f.groups {
		if g.GroupID == groupID {
			cp := *g
			return &cp, nil
		}
	}
	return nil, consts.ErrNotFound
}

func newTestGroupService() (*GroupService, *fakeGroupStore) {
	store := &fakeGroupStore{}
	return &GroupService{GroupMapper: store}, store
}

func TestCreateGroup(t *testing.T) {
	svc, store := newTestGroupService()

	resp, err := svc.CreateGroup(context.Background(), &web.CreateGroupReq{
		GroupName: "gophers",
		Members:   []string{"alice", "bob"},
	})
	require.NoError(t, err)

	assert.Equal(t, "gophers", resp.Data.GroupName)
	assert.Equal(t, []string{"alice", "bob"}, resp.Data.Members)
	assert.Greater(t, resp.Data.GroupId, int64(0))
	// 新群组消息列表为空而不是 null
	assert.NotNil(t, resp.Data.Messages)
	assert.Len(t, resp.Data.Messages, 0)

	require.Len(t, store.groups, 1)
	assert.Equal(t, resp.Data.GroupId, store.groups[0].GroupID)
}

func TestSendMessageAppendsInOrder(t *testing.T) {
	svc, store := newTestGroupService()
	ctx := context.Background()

	created, err := svc.CreateGroup(ctx, &web.CreateGroupReq{GroupName: "gophers", Members: []string{"alice"}})
	require.NoError(t, err)
	gid := created.Data.GroupId

	_, err = svc.SendMessage(ctx, &web.SendMessageReq{GroupId: gid, Sender: "alice", Content: "first"})
	require.NoError(t, err)
	resp, err := svc.SendMessage(ctx, &web.SendMessageReq{GroupId: gid, Sender: "bob", Content: "second"})
	require.NoError(t, err)

	require.Len(t, resp.Data.Messages, 2)
	assert.Equal(t, "first", resp.Data.Messages[0].Content)
	assert.Equal(t, "alice", resp.Data.Messages[0].Sender)
	assert.Equal(t, "second", resp.Data.Messages[1].Content)
	assert.Equal(t, "bob", resp.Data.Messages[1].Sender)

	g, err := store.FindOneByGroupID(ctx, gid)
	require.NoError(t, err)
	assert.Len(t, g.Messages, 2)
}

func TestSendMessageUnknownGroup(t *testing.T) {
	svc, _ := newTestGroupService()

	_, err := svc.SendMessage(context.Background(), &web.SendMessageReq{GroupId: 42, Sender: "alice", Content: "hi"})
	assert.ErrorIs(t, err, consts.ErrNotFound)
}
