package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeTweet_DuplicateIsNoOp(t *testing.T) {
	d := newTestDB(t)

	author := createUser(t, d, "author", "key-author")
	fan := createUser(t, d, "fan", "key-fan")

	tweetID, err := d.CreateTweet(author.ID, "hello", nil)
	require.NoError(t, err)

	ok, err := d.LikeTweet(tweetID, fan.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.LikeTweet(tweetID, fan.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	likers, err := d.GetTweetLikers(tweetID)
	require.NoError(t, err)
	require.Len(t, likers, 1)
	assert.Equal(t, fan.ID, likers[0].UserID)
	assert.Equal(t, "fan", likers[0].Name)
}

func TestUnlikeTweet(t *testing.T) {
	d := newTestDB(t)

	author := createUser(t, d, "author", "key-author")
	fan := createUser(t, d, "fan", "key-fan")

	tweetID, err := d.CreateTweet(author.ID, "hello", nil)
	require.NoError(t, err)

	// Снятие несуществующего лайка — не ошибка
	ok, err := d.UnlikeTweet(tweetID, fan.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = d.LikeTweet(tweetID, fan.ID)
	require.NoError(t, err)

	ok, err = d.UnlikeTweet(tweetID, fan.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	likers, err := d.GetTweetLikers(tweetID)
	require.NoError(t, err)
	assert.Empty(t, likers)
}
