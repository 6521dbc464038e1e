package notify

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"social-sync/domain"
	"social-sync/mocks"
	"social-sync/moderation"
	"social-sync/wire"
)

type fakeConnector struct {
	connects int
	closes   int
}

func (f *fakeConnector) Connect(ctx context.Context) { f.connects++ }
func (f *fakeConnector) Close()                      { f.closes++ }

// fakeFactory hands out a fresh connector per start and remembers them all.
type fakeFactory struct {
	built []*fakeConnector
}

func (f *fakeFactory) new() Connector {
	connector := &fakeConnector{}
	f.built = append(f.built, connector)
	return connector
}

func newCenterFixture(t *testing.T) (*Center, *mocks.MockTokenSource, *mocks.MockRemoteAPI) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	tokens := mocks.NewMockTokenSource(ctrl)
	api := mocks.NewMockRemoteAPI(ctrl)
	return NewCenter(tokens, api, log), tokens, api
}

func TestCenter_Start_WithCredentials(t *testing.T) {
	req := require.New(t)
	center, tokens, api := newCenterFixture(t)
	factory := &fakeFactory{}
	center.WithChannel(factory.new)

	tokens.EXPECT().OnChange(gomock.Any())
	tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true).AnyTimes()
	tokens.EXPECT().Token().Return("token").AnyTimes()
	api.EXPECT().FetchNotifications(gomock.Any(), "u1").Return([]wire.NotificationItem{
		{ID: 1, SenderName: "bob", Message: "bob liked your post"},
		{ID: 2, SenderName: "eve", Message: "eve commented", IsRead: true},
	})

	center.Start(context.Background())

	req.Len(factory.built, 1)
	req.Equal(1, factory.built[0].connects)
	req.Len(center.Notifications(), 2)
	req.Equal(1, center.Unread())
}

func TestCenter_Start_DeferredUntilCredentials(t *testing.T) {
	req := require.New(t)
	center, tokens, api := newCenterFixture(t)
	factory := &fakeFactory{}
	center.WithChannel(factory.new)

	var onChange func()
	tokens.EXPECT().OnChange(gomock.Any()).Do(func(fn func()) { onChange = fn })

	// First pass: no identity yet, nothing happens.
	tokens.EXPECT().Identity().Return(domain.Identity{}, false)
	center.Start(context.Background())
	req.Empty(factory.built)

	// Token arrives: the change notification triggers the real start.
	tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true)
	tokens.EXPECT().Token().Return("token")
	api.EXPECT().FetchNotifications(gomock.Any(), "u1").Return(nil)
	onChange()

	req.Len(factory.built, 1)
	req.Equal(1, factory.built[0].connects)

	// A second change notification must not reconnect.
	tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true)
	tokens.EXPECT().Token().Return("token")
	onChange()
	req.Len(factory.built, 1)
	req.Equal(1, factory.built[0].connects)
}

func TestCenter_RestartAfterClose(t *testing.T) {
	req := require.New(t)
	center, tokens, api := newCenterFixture(t)
	factory := &fakeFactory{}
	center.WithChannel(factory.new)

	var onChange func()
	tokens.EXPECT().OnChange(gomock.Any()).Do(func(fn func()) { onChange = fn })
	tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true).AnyTimes()
	tokens.EXPECT().Token().Return("token").AnyTimes()
	api.EXPECT().FetchNotifications(gomock.Any(), "u1").Return(nil).Times(2)

	center.Start(context.Background())
	req.Len(factory.built, 1)

	// Logout, then a re-login in the same process: the closed channel is
	// replaced by a fresh one instead of being revived.
	center.Close()
	req.Equal(1, factory.built[0].closes)

	onChange()
	req.Len(factory.built, 2)
	req.Equal(1, factory.built[1].connects)
}

func TestCenter_HandleRaw(t *testing.T) {
	req := require.New(t)
	center, _, _ := newCenterFixture(t)

	center.HandleRaw([]byte(`{"ID":1,"sender_name":"bob","type":"like","message":"bob liked your post"}`))
	center.HandleRaw([]byte(`{"ID":2,"sender_name":"eve","type":"follow","message":"eve started following you"}`))

	// Newest first.
	list := center.Notifications()
	req.Len(list, 2)
	req.Equal(int64(2), list[0].ID)
	req.Equal(int64(1), list[1].ID)
	req.Equal(2, center.Unread())

	toast, ok := center.Toast()
	req.True(ok)
	req.Equal(int64(2), toast.ID)
}

func TestCenter_HandleRaw_MalformedDropped(t *testing.T) {
	req := require.New(t)
	center, _, _ := newCenterFixture(t)

	center.HandleRaw([]byte(`{not json`))

	req.Empty(center.Notifications())
	_, ok := center.Toast()
	req.False(ok)
}

func TestCenter_ToastSelfClears(t *testing.T) {
	req := require.New(t)
	center, _, _ := newCenterFixture(t)
	center.WithToastDuration(20 * time.Millisecond)

	center.HandleRaw([]byte(`{"ID":1,"sender_name":"bob","message":"hi"}`))

	_, ok := center.Toast()
	req.True(ok)

	req.Eventually(func() bool {
		_, ok := center.Toast()
		return !ok
	}, time.Second, 5*time.Millisecond)

	// The notification itself stays in the list.
	req.Len(center.Notifications(), 1)
}

func TestCenter_MutedNotificationNeverToasts(t *testing.T) {
	req := require.New(t)
	center, _, _ := newCenterFixture(t)

	moderator, err := moderation.NewModerator([]string{"spoiler"}, '*')
	req.NoError(err)
	center.WithModerator(moderator)

	center.HandleRaw([]byte(`{"ID":1,"sender_name":"bob","message":"huge spoiler inside"}`))

	_, ok := center.Toast()
	req.False(ok)

	list := center.Notifications()
	req.Len(list, 1)
	req.Equal("huge ******* inside", list[0].Message)
}

func TestCenter_MarkAllRead_OptimisticDespiteRemoteFailure(t *testing.T) {
	req := require.New(t)
	center, tokens, api := newCenterFixture(t)

	center.HandleRaw([]byte(`{"ID":1,"message":"one"}`))
	center.HandleRaw([]byte(`{"ID":2,"message":"two"}`))
	req.Equal(2, center.Unread())

	tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true)
	api.EXPECT().MarkNotificationsRead(gomock.Any(), "u1").Return(fmt.Errorf("boom"))

	center.MarkAllRead(context.Background())
	req.Zero(center.Unread())
}

func TestCenter_MarkRead_Single(t *testing.T) {
	req := require.New(t)
	center, _, _ := newCenterFixture(t)

	center.HandleRaw([]byte(`{"ID":1,"message":"one"}`))
	center.HandleRaw([]byte(`{"ID":2,"message":"two"}`))

	center.MarkRead(1)
	req.Equal(1, center.Unread())
}

func TestCenter_Close(t *testing.T) {
	req := require.New(t)
	center, tokens, api := newCenterFixture(t)
	factory := &fakeFactory{}
	center.WithChannel(factory.new)

	tokens.EXPECT().OnChange(gomock.Any())
	tokens.EXPECT().Identity().Return(domain.Identity{ID: "u1"}, true).AnyTimes()
	tokens.EXPECT().Token().Return("token").AnyTimes()
	api.EXPECT().FetchNotifications(gomock.Any(), "u1").Return(nil)
	center.Start(context.Background())

	center.Close()
	req.Len(factory.built, 1)
	req.Equal(1, factory.built[0].closes)
}
