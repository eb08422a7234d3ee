package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/twitter-lite/internal/database"
	"github.com/thereayou/twitter-lite/internal/handlers/dto"
	"github.com/thereayou/twitter-lite/internal/middleware"
)

type TweetHandler struct {
	db *database.Database
}

func NewTweetHandler(db *database.Database) *TweetHandler {
	return &TweetHandler{db: db}
}

// GetFeed возвращает ленту твитов
func (h *TweetHandler) GetFeed(c *gin.Context) {
	feed, err := h.db.GetTweetFeed()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true, "tweets": feed})
}

// CreateTweet создает новый твит от имени текущего пользователя
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	var req dto.TweetCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tweetID, err := h.db.CreateTweet(userID, req.TweetData, req.TweetMediaIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tweet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true, "tweet_id": tweetID})
}

// DeleteTweet удаляет твит, если пользователь является его автором
func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	tweetID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tweet id"})
		return
	}

	if err := h.db.DeleteTweet(tweetID, userID); err != nil {
		if errors.Is(err, database.ErrNotTweetOwner) {
			c.JSON(http.StatusForbidden, dto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete tweet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}

// Like ставит лайк твиту. Повторный лайк не считается ошибкой.
func (h *TweetHandler) Like(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	tweetID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tweet id"})
		return
	}

	if _, err := h.db.LikeTweet(tweetID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to like tweet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}

// Unlike убирает лайк с твита
func (h *TweetHandler) Unlike(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	tweetID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tweet id"})
		return
	}

	if _, err := h.db.UnlikeTweet(tweetID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unlike tweet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
