package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDeleteTweet_ByOwner(t *testing.T) {
	d := newTestDB(t)

	author := createUser(t, d, "author", "key-author")
	fan := createUser(t, d, "fan", "key-fan")

	mediaID, err := d.SaveMedia("pic.jpg", []byte("jpeg bytes"))
	require.NoError(t, err)

	tweetID, err := d.CreateTweet(author.ID, "to be deleted", []int64{int64(mediaID)})
	require.NoError(t, err)

	_, err = d.LikeTweet(tweetID, fan.ID)
	require.NoError(t, err)

	require.NoError(t, d.DeleteTweet(tweetID, author.ID))

	_, err = d.GetTweet(tweetID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// Лайки удаляются вместе с твитом
	likers, err := d.GetTweetLikers(tweetID)
	require.NoError(t, err)
	assert.Empty(t, likers)

	// Медиа живет отдельно и остается
	media, err := d.GetMedia(mediaID)
	require.NoError(t, err)
	assert.Equal(t, "pic.jpg", media.Filename)
}

func TestDeleteTweet_NotOwner(t *testing.T) {
	d := newTestDB(t)

	author := createUser(t, d, "author", "key-author")
	other := createUser(t, d, "other", "key-other")

	tweetID, err := d.CreateTweet(author.ID, "hands off", nil)
	require.NoError(t, err)

	err = d.DeleteTweet(tweetID, other.ID)
	assert.True(t, errors.Is(err, ErrNotTweetOwner))

	tweet, err := d.GetTweet(tweetID)
	require.NoError(t, err)
	assert.Equal(t, "hands off", tweet.Content)
}

func TestDeleteTweet_Missing(t *testing.T) {
	d := newTestDB(t)

	user := createUser(t, d, "user", "key-user")

	err := d.DeleteTweet(12345, user.ID)
	assert.True(t, errors.Is(err, ErrNotTweetOwner))
}

func TestIsTweetOwner(t *testing.T) {
	d := newTestDB(t)

	author := createUser(t, d, "author", "key-author")
	other := createUser(t, d, "other", "key-other")

	tweetID, err := d.CreateTweet(author.ID, "mine", nil)
	require.NoError(t, err)

	ok, err := d.IsTweetOwner(tweetID, author.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.IsTweetOwner(tweetID, other.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateTweet_NilMediaIDs(t *testing.T) {
	d := newTestDB(t)

	author := createUser(t, d, "author", "key-author")

	tweetID, err := d.CreateTweet(author.ID, "no media", nil)
	require.NoError(t, err)

	tweet, err := d.GetTweet(tweetID)
	require.NoError(t, err)
	assert.NotNil(t, tweet.MediaIDs)
	assert.Empty(t, tweet.MediaIDs)
}
