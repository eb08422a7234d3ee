package dto

type TweetCreateRequest struct {
	TweetData     string  `json:"tweet_data" binding:"required,max=10000"`
	TweetMediaIDs []int64 `json:"tweet_media_ids"`
}
