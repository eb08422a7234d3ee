package database

import (
	"github.com/thereayou/twitter-lite/internal/models"
	"gorm.io/gorm"
)

func (d *Database) CreateTweet(authorID uint, content string, mediaIDs []int64) (uint, error) {
	tweet := models.Tweet{
		AuthorID: authorID,
		Content:  content,
		MediaIDs: mediaIDs,
	}
	if tweet.MediaIDs == nil {
		tweet.MediaIDs = models.Int64List{}
	}
	if err := d.db.Create(&tweet).Error; err != nil {
		return 0, err
	}
	return tweet.ID, nil
}

func (d *Database) GetTweet(id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := d.db.First(&tweet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

// DeleteTweet удаляет твит вместе с его лайками. Удалять может только автор,
// иначе ErrNotTweetOwner; несуществующий твит даёт тот же результат.
// Медиафайлы твита не трогаем, они живут отдельно.
func (d *Database) DeleteTweet(tweetID, requesterID uint) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		var tweet models.Tweet
		if err := tx.First(&tweet, "id = ?", tweetID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotTweetOwner
			}
			return err
		}

		if tweet.AuthorID != requesterID {
			return ErrNotTweetOwner
		}

		if err := tx.Delete(&models.Like{}, "tweet_id = ?", tweetID).Error; err != nil {
			return err
		}

		return tx.Delete(&tweet).Error
	})
}

// IsTweetOwner проверяет, что твит принадлежит пользователю.
func (d *Database) IsTweetOwner(tweetID, userID uint) (bool, error) {
	var count int64
	err := d.db.Model(&models.Tweet{}).
		Where("id = ? AND author_id = ?", tweetID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
