package database

import (
	"errors"

	"github.com/thereayou/twitter-lite/internal/models"
	"gorm.io/gorm"
)

// FollowUser добавляет подписку. Возвращает false без ошибки, если подписка
// уже существует: гонка двух одинаковых вставок разрешается ограничением
// уникальности в базе, а не блокировкой на нашей стороне.
func (d *Database) FollowUser(followerID, followedID uint) (bool, error) {
	err := d.db.Create(&models.Follow{FollowerID: followerID, FollowedID: followedID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UnfollowUser удаляет подписку. false — ребра не было.
func (d *Database) UnfollowUser(followerID, followedID uint) (bool, error) {
	res := d.db.Delete(&models.Follow{}, "follower_id = ? AND followed_id = ?", followerID, followedID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetFollowers возвращает тех, кто подписан на пользователя.
func (d *Database) GetFollowers(userID uint) ([]UserRef, error) {
	refs := make([]UserRef, 0)
	err := d.db.Model(&models.User{}).
		Select("users.id, users.name").
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", userID).
		Order("users.id").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

// GetFollowing возвращает тех, на кого пользователь подписан.
func (d *Database) GetFollowing(userID uint) ([]UserRef, error) {
	refs := make([]UserRef, 0)
	err := d.db.Model(&models.User{}).
		Select("users.id, users.name").
		Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("users.id").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}
