package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTweetFeed_BoundAndOrder(t *testing.T) {
	d := newTestDB(t)

	author := createUser(t, d, "author", "key-author")

	var lastID uint
	for i := 0; i < 60; i++ {
		id, err := d.CreateTweet(author.ID, fmt.Sprintf("tweet %d", i), nil)
		require.NoError(t, err)
		lastID = id
	}

	feed, err := d.GetTweetFeed()
	require.NoError(t, err)
	require.Len(t, feed, 50)

	assert.Equal(t, lastID, feed[0].ID)
	for i := 1; i < len(feed); i++ {
		assert.Greater(t, feed[i-1].ID, feed[i].ID)
	}
}

func TestGetTweetFeed_LikeScenario(t *testing.T) {
	d := newTestDB(t)

	a := createUser(t, d, "A", "key-a")
	b := createUser(t, d, "B", "key-b")

	tweetID, err := d.CreateTweet(a.ID, "hello", nil)
	require.NoError(t, err)

	feed, err := d.GetTweetFeed()
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "hello", feed[0].Content)
	assert.Equal(t, UserRef{ID: a.ID, Name: "A"}, feed[0].Author)
	assert.Equal(t, []string{}, feed[0].Attachments)
	assert.Equal(t, []Liker{}, feed[0].Likes)

	_, err = d.LikeTweet(tweetID, b.ID)
	require.NoError(t, err)

	feed, err = d.GetTweetFeed()
	require.NoError(t, err)
	assert.Equal(t, []Liker{{UserID: b.ID, Name: "B"}}, feed[0].Likes)

	_, err = d.UnlikeTweet(tweetID, b.ID)
	require.NoError(t, err)

	feed, err = d.GetTweetFeed()
	require.NoError(t, err)
	assert.Equal(t, []Liker{}, feed[0].Likes)
}

func TestGetTweetFeed_AttachmentLinks(t *testing.T) {
	d := newTestDB(t)

	author := createUser(t, d, "author", "key-author")

	mediaID, err := d.SaveMedia("pic.png", []byte("png bytes"))
	require.NoError(t, err)

	// Второй ID висячий: ссылка всё равно строится, не откроется только скачивание
	_, err = d.CreateTweet(author.ID, "with media", []int64{int64(mediaID), 9999})
	require.NoError(t, err)

	feed, err := d.GetTweetFeed()
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, []string{
		fmt.Sprintf("/media/%d", mediaID),
		"/media/9999",
	}, feed[0].Attachments)
}
