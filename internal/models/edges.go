package models

// Follow — направленное ребро "follower подписан на followed".
// Составной первичный ключ делает ребро элементом множества:
// повторная вставка упирается в ограничение уникальности.
type Follow struct {
	FollowerID uint `gorm:"primaryKey;autoIncrement:false"`
	FollowedID uint `gorm:"primaryKey;autoIncrement:false;index"`
}

// Like — ребро "user лайкнул tweet".
type Like struct {
	UserID  uint `gorm:"primaryKey;autoIncrement:false"`
	TweetID uint `gorm:"primaryKey;autoIncrement:false;index"`
}
