package database

import (
	"errors"

	"github.com/haveanidea/api/internal/models"
	"gorm.io/gorm"
)

func (d *Database) FindUserByWallet(wallet string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("wallet_address = ?", wallet).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetOrCreateUser resolves a wallet to its user row, inserting one on first
// sight. Two concurrent first logins race on the unique index: the loser sees
// a duplicate-key error and falls back to the lookup instead of failing.
func (d *Database) GetOrCreateUser(wallet string) (*models.User, error) {
	user, err := d.FindUserByWallet(wallet)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := models.User{WalletAddress: wallet}
	if err := d.db.Create(&created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return d.FindUserByWallet(wallet)
		}
		return nil, err
	}

	return d.FindUserByWallet(wallet)
}
