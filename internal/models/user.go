package models

type User struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;not null"`
	// APIKey хранится в зашифрованном виде (base64), поиск идёт по шифротексту
	APIKey string `gorm:"uniqueIndex;not null"`

	// Связи
	Tweets []Tweet `gorm:"foreignKey:AuthorID"`
}
