package database

import (
	"fmt"

	"github.com/thereayou/twitter-lite/internal/models"
)

// Лента отдаёт не больше feedLimit последних твитов, без пагинации.
const feedLimit = 50

type UserRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Liker struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// FeedItem — денормализованное представление твита для выдачи.
type FeedItem struct {
	ID          uint     `json:"id"`
	Content     string   `json:"content"`
	Attachments []string `json:"attachments"`
	Author      UserRef  `json:"author"`
	Likes       []Liker  `json:"likes"`
}

// GetTweetFeed собирает ленту: свежие твиты первыми (по убыванию id),
// автор, ссылки на вложения и список лайкнувших для каждого твита.
// Лайки выбираются отдельным запросом на твит; при лимите в 50 это терпимо.
func (d *Database) GetTweetFeed() ([]FeedItem, error) {
	var tweets []models.Tweet
	err := d.db.
		Preload("Author").
		Order("id DESC").
		Limit(feedLimit).
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}

	feed := make([]FeedItem, 0, len(tweets))
	for _, tweet := range tweets {
		likes, err := d.GetTweetLikers(tweet.ID)
		if err != nil {
			return nil, err
		}

		attachments := make([]string, 0, len(tweet.MediaIDs))
		for _, mediaID := range tweet.MediaIDs {
			attachments = append(attachments, MediaLink(mediaID))
		}

		feed = append(feed, FeedItem{
			ID:          tweet.ID,
			Content:     tweet.Content,
			Attachments: attachments,
			Author:      UserRef{ID: tweet.Author.ID, Name: tweet.Author.Name},
			Likes:       likes,
		})
	}

	return feed, nil
}

// MediaLink строит ссылку на скачивание медиа. Формат стабильный:
// он встроен в ответы ленты и на него завязана раздача файлов.
func MediaLink(mediaID int64) string {
	return fmt.Sprintf("/media/%d", mediaID)
}
