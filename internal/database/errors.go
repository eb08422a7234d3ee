package database

import "errors"

var (
	ErrNotTweetOwner = errors.New("you are not allowed to delete this tweet")
)
