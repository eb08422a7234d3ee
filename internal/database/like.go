package database

import (
	"errors"

	"github.com/thereayou/twitter-lite/internal/models"
	"gorm.io/gorm"
)

// LikeTweet добавляет лайк. Повторный лайк — не ошибка, просто false.
func (d *Database) LikeTweet(tweetID, userID uint) (bool, error) {
	err := d.db.Create(&models.Like{UserID: userID, TweetID: tweetID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UnlikeTweet убирает лайк. false — лайка не было.
func (d *Database) UnlikeTweet(tweetID, userID uint) (bool, error) {
	res := d.db.Delete(&models.Like{}, "tweet_id = ? AND user_id = ?", tweetID, userID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetTweetLikers возвращает лайкнувших твит.
func (d *Database) GetTweetLikers(tweetID uint) ([]Liker, error) {
	likers := make([]Liker, 0)
	err := d.db.Model(&models.User{}).
		Select("users.id AS user_id, users.name").
		Joins("JOIN likes ON likes.user_id = users.id").
		Where("likes.tweet_id = ?", tweetID).
		Order("users.id").
		Scan(&likers).Error
	if err != nil {
		return nil, err
	}
	return likers, nil
}
