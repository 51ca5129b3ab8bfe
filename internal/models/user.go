package models

import (
	"time"
)

// User is created lazily on first login for an unseen wallet. Wallet
// addresses are compared case-sensitively, without checksum normalization.
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	WalletAddress string    `gorm:"uniqueIndex;not null;size:42" json:"wallet_address"`
	Email         *string   `json:"email"`
	Username      *string   `json:"username"`
	AvatarURL     *string   `json:"avatar_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
