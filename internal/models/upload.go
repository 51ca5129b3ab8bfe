package models

import "time"

type Upload struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"not null" json:"filename"`
	OriginalName string    `gorm:"not null" json:"original_name"`
	MimeType     string    `gorm:"not null" json:"mime_type"`
	FileSize     int64     `gorm:"not null" json:"file_size"`
	URL          string    `gorm:"not null" json:"url"`
	UploaderID   uint      `gorm:"not null;index" json:"uploader_id"`
	CreatedAt    time.Time `json:"created_at"`
}
