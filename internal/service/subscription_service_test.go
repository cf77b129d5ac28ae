package service

import (
	"encoding/json"
	"testing"

	"vidtube/internal/model"
	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSubscriptionService(db *gorm.DB) *SubscriptionService {
	return NewSubscriptionService(
		repository.NewSubscriptionRepository(db),
		repository.NewUserRepository(db),
	)
}

func TestSubscribeUnsubscribeResubscribe(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)

	channel := createTestUser(t, db, "channel")
	alice := createTestUser(t, db, "alice")

	data, err := svc.Toggle(alice.ID, channel.ID)
	require.NoError(t, err)
	assert.True(t, data.Subscribed)
	assert.Equal(t, int64(1), data.TotalSubscribers)

	data, err = svc.Toggle(alice.ID, channel.ID)
	require.NoError(t, err)
	assert.False(t, data.Subscribed)
	assert.Equal(t, int64(0), data.TotalSubscribers)

	data, err = svc.Toggle(alice.ID, channel.ID)
	require.NoError(t, err)
	assert.True(t, data.Subscribed)
	assert.Equal(t, int64(1), data.TotalSubscribers)

	// Exactly one row survives the full cycle.
	var rows int64
	require.NoError(t, db.Model(&model.Subscription{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestSubscribeSelfAndMissingChannel(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)

	alice := createTestUser(t, db, "alice")

	_, err := svc.Toggle(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfSubscription)

	_, err = svc.Toggle(alice.ID, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func TestSubscribedChannelListOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)

	alice := createTestUser(t, db, "alice")
	chanA := createTestUser(t, db, "channel-a")
	chanB := createTestUser(t, db, "channel-b")

	list, err := svc.ListSubscribed(alice.ID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = svc.Toggle(alice.ID, chanB.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(alice.ID, chanA.ID)
	require.NoError(t, err)

	// A second subscriber to channel B shows up in the count.
	bob := createTestUser(t, db, "bob")
	_, err = svc.Toggle(bob.ID, chanB.ID)
	require.NoError(t, err)

	list, err = svc.ListSubscribed(alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, chanB.UserName, list[0].Channel.UserName)
	assert.Equal(t, chanA.UserName, list[1].Channel.UserName)
	assert.Equal(t, int64(2), list[0].Channel.SubscriberCount)
	assert.Equal(t, int64(1), list[1].Channel.SubscriberCount)
	assert.True(t, list[0].IsSubscribed)
	assert.True(t, list[1].IsSubscribed)

	// The subscriber count lives inside the channel block on the wire.
	raw, err := json.Marshal(list[0])
	require.NoError(t, err)
	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.NotContains(t, payload, "subscriberCount")

	var channel map[string]interface{}
	require.NoError(t, json.Unmarshal(payload["channel"], &channel))
	assert.Contains(t, channel, "subscriberCount")
	assert.Contains(t, channel, "_id")
	assert.Contains(t, channel, "userName")
	assert.Contains(t, channel, "fullName")
	assert.Contains(t, channel, "avatar")
}
