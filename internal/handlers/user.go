package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/twitter-lite/internal/cache"
	"github.com/thereayou/twitter-lite/internal/database"
	"github.com/thereayou/twitter-lite/internal/handlers/dto"
	"github.com/thereayou/twitter-lite/internal/middleware"
	"github.com/thereayou/twitter-lite/internal/models"
	"github.com/thereayou/twitter-lite/pkg/apikey"
)

type UserHandler struct {
	db     *database.Database
	cipher *apikey.Cipher
	creds  *cache.CredentialCache
}

func NewUserHandler(db *database.Database, cipher *apikey.Cipher, creds *cache.CredentialCache) *UserHandler {
	return &UserHandler{db: db, cipher: cipher, creds: creds}
}

// GetProfile возвращает профиль пользователя с подписчиками и подписками.
// Специальный id "me" резолвится через api-key и требует аутентификации.
func (h *UserHandler) GetProfile(c *gin.Context) {
	param := c.Param("id")

	var userID uint
	if param == "me" {
		id, err := middleware.Authenticate(c, h.db, h.cipher, h.creds)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(err.Error()))
			return
		}
		userID = id
	} else {
		id, err := parseID(param)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		userID = id
	}

	user, err := h.db.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"result": false, "message": "User not found"})
		return
	}

	followers, err := h.db.GetFollowers(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load followers"})
		return
	}

	following, err := h.db.GetFollowing(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load following"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": true,
		"user": dto.UserProfile{
			ID:        user.ID,
			Name:      user.Name,
			Followers: followers,
			Following: following,
		},
	})
}

// Register создает пользователя и выдает сгенерированный API ключ.
// Ключ показывается один раз, в базе остается только шифротекст.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plainKey := uuid.NewString()

	user := &models.User{
		Name:   req.Name,
		APIKey: h.cipher.Encrypt(plainKey),
	}

	if err := h.db.SaveUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"result":  true,
		"user_id": user.ID,
		"api_key": plainKey,
	})
}

// UpdateMe меняет имя текущего пользователя
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	var req dto.UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.UpdateUserName(userID, req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}

// Follow подписывает текущего пользователя на другого.
// result=false означает, что подписка уже была.
func (h *UserHandler) Follow(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	followedID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	ok, err := h.db.FollowUser(userID, followedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to follow user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": ok})
}

// Unfollow отписывает текущего пользователя. result=false — подписки не было.
func (h *UserHandler) Unfollow(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	followedID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	ok, err := h.db.UnfollowUser(userID, followedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unfollow user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": ok})
}
