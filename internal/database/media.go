package database

import (
	"github.com/thereayou/twitter-lite/internal/models"
)

func (d *Database) SaveMedia(filename string, fileData []byte) (uint, error) {
	media := models.Media{Filename: filename, FileData: fileData}
	if err := d.db.Create(&media).Error; err != nil {
		return 0, err
	}
	return media.ID, nil
}

func (d *Database) GetMedia(id uint) (*models.Media, error) {
	var media models.Media
	if err := d.db.First(&media, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}
