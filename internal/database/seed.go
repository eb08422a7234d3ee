package database

import (
	"fmt"
	"log"

	"github.com/thereayou/twitter-lite/internal/models"
	"github.com/thereayou/twitter-lite/pkg/apikey"
)

// CreateInitialData наполняет пустую базу стартовым набором: два пользователя,
// три твита с картинками, взаимные подписки и несколько лайков.
// Если пользователи уже есть, ничего не делает.
func (d *Database) CreateInitialData(cipher *apikey.Cipher) error {
	var count int64
	if err := d.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("database already seeded, skipping")
		return nil
	}

	user1 := models.User{Name: "test", APIKey: cipher.Encrypt("test")}
	user2 := models.User{Name: "User2", APIKey: cipher.Encrypt("test_2")}
	for _, u := range []*models.User{&user1, &user2} {
		if err := d.SaveUser(u); err != nil {
			return err
		}
	}

	mediaIDs := make([]int64, 0, 3)
	for i := 1; i <= 3; i++ {
		id, err := d.SaveMedia(
			fmt.Sprintf("image%d.jpg", i),
			[]byte(fmt.Sprintf("placeholder image %d", i)),
		)
		if err != nil {
			return err
		}
		mediaIDs = append(mediaIDs, int64(id))
	}

	tweets := []struct {
		author  uint
		content string
		media   []int64
	}{
		{user1.ID, "Hello, World! This is tweet 1", []int64{mediaIDs[0]}},
		{user2.ID, "This is tweet 2", []int64{mediaIDs[1]}},
		{user1.ID, "Another day, another tweet!", []int64{mediaIDs[2]}},
	}

	tweetIDs := make([]uint, 0, len(tweets))
	for _, t := range tweets {
		id, err := d.CreateTweet(t.author, t.content, t.media)
		if err != nil {
			return err
		}
		tweetIDs = append(tweetIDs, id)
	}

	if _, err := d.FollowUser(user1.ID, user2.ID); err != nil {
		return err
	}
	if _, err := d.FollowUser(user2.ID, user1.ID); err != nil {
		return err
	}

	likes := []struct {
		tweet uint
		user  uint
	}{
		{tweetIDs[0], user2.ID},
		{tweetIDs[1], user1.ID},
		{tweetIDs[2], user2.ID},
	}
	for _, l := range likes {
		if _, err := d.LikeTweet(l.tweet, l.user); err != nil {
			return err
		}
	}

	log.Println("initial data created")
	return nil
}
