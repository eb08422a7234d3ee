package models

type Media struct {
	ID       uint   `gorm:"primaryKey"`
	Filename string `gorm:"not null"`
	FileData []byte `gorm:"not null"`
}
