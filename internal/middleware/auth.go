package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/twitter-lite/internal/cache"
	"github.com/thereayou/twitter-lite/internal/database"
	"github.com/thereayou/twitter-lite/internal/handlers/dto"
	"github.com/thereayou/twitter-lite/pkg/apikey"
)

const UserIDKey = "userID"

var ErrInvalidAPIKey = errors.New("Invalid API key")

// Authenticate резолвит заголовок api-key в id пользователя.
// Ключ шифруется и ищется по шифротексту; сначала смотрим кэш, потом базу.
func Authenticate(c *gin.Context, db *database.Database, cipher *apikey.Cipher, creds *cache.CredentialCache) (uint, error) {
	key := c.GetHeader("api-key")
	if key == "" {
		return 0, ErrInvalidAPIKey
	}

	encrypted := cipher.Encrypt(key)

	if userID, ok := creds.Get(c.Request.Context(), encrypted); ok {
		return userID, nil
	}

	user, err := db.FindUserByEncryptedKey(encrypted)
	if err != nil {
		return 0, ErrInvalidAPIKey
	}

	creds.Set(c.Request.Context(), encrypted, user.ID)

	return user.ID, nil
}

// APIKeyMiddleware проверяет api-key и кладёт id пользователя в контекст
func APIKeyMiddleware(db *database.Database, cipher *apikey.Cipher, creds *cache.CredentialCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := Authenticate(c, db, cipher, creds)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(err.Error()))
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
