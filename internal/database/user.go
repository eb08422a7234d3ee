package database

import (
	"github.com/thereayou/twitter-lite/internal/models"
)

func (d *Database) SaveUser(user *models.User) error {
	return d.db.Create(user).Error
}

func (d *Database) GetUser(id uint) (*models.User, error) {
	user := models.User{}
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByEncryptedKey ищет пользователя по шифротексту API ключа.
// Хранимое значение никогда не расшифровывается, сравнение идёт по шифротексту.
func (d *Database) FindUserByEncryptedKey(encryptedKey string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("api_key = ?", encryptedKey).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserName меняет имя — единственное изменяемое поле пользователя.
func (d *Database) UpdateUserName(id uint, name string) error {
	return d.db.Model(&models.User{}).Where("id = ?", id).Update("name", name).Error
}
