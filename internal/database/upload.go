package database

import (
	"github.com/haveanidea/api/internal/models"
)

func (d *Database) SaveUpload(upload *models.Upload) error {
	return d.db.Create(upload).Error
}
