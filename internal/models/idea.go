package models

import (
	"encoding/json"
	"time"
)

// Idea keeps two embedded JSON sub-documents serialized in text columns:
// Messages (append-only history) and Launch (crowdfunding terms).
// CreatorID and Deployer are independent authorization keys and must not be
// collapsed into a single owner concept.
type Idea struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Icon        string    `gorm:"not null"`
	BgColor     *string
	Category    *string
	IdeaType    *string
	Chain       *string
	Tags        *string
	Messages    string  `gorm:"type:text;not null"`
	Launch      *string `gorm:"type:text"`
	CreatorID   uint    `gorm:"not null;index"`
	Deployer    *string `gorm:"size:42"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type IdeaMessage struct {
	Title   string `json:"title"`
	Created int64  `json:"created"`
	Href    string `json:"href"`
}

type LaunchContacts struct {
	Twitter  *string `json:"twitter,omitempty"`
	Discord  *string `json:"discord,omitempty"`
	Telegram *string `json:"telegram,omitempty"`
}

type LaunchParams struct {
	PriceEth        *float64        `json:"priceEth,omitempty"`
	FundingGoalEth  *float64        `json:"fundingGoalEth,omitempty"`
	RevenueSharePct *float64        `json:"revenueSharePct,omitempty"`
	Contacts        *LaunchContacts `json:"contacts,omitempty"`
}

// DecodeMessages never fails the surrounding read: corrupted stored text
// degrades to an empty history.
func (i *Idea) DecodeMessages() []IdeaMessage {
	var msgs []IdeaMessage
	if err := json.Unmarshal([]byte(i.Messages), &msgs); err != nil {
		return []IdeaMessage{}
	}
	if msgs == nil {
		msgs = []IdeaMessage{}
	}
	return msgs
}

// DecodeLaunch treats corrupted stored text as absent launch parameters.
func (i *Idea) DecodeLaunch() *LaunchParams {
	if i.Launch == nil {
		return nil
	}
	var lp LaunchParams
	if err := json.Unmarshal([]byte(*i.Launch), &lp); err != nil {
		return nil
	}
	return &lp
}

// Encoding is strict, unlike decoding: a sub-document that cannot be
// serialized must fail the write.
func EncodeMessages(msgs []IdeaMessage) (string, error) {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func EncodeLaunch(lp *LaunchParams) (string, error) {
	raw, err := json.Marshal(lp)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// IdeaResponse is the API shape of an Idea with both sub-documents decoded.
type IdeaResponse struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	BgColor     *string       `json:"bg_color"`
	Category    *string       `json:"category"`
	IdeaType    *string       `json:"idea_type"`
	Chain       *string       `json:"chain"`
	Tags        *string       `json:"tags"`
	Messages    []IdeaMessage `json:"messages"`
	Launch      *LaunchParams `json:"launch"`
	CreatorID   uint          `json:"creator_id"`
	Deployer    *string       `json:"deployer"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (i *Idea) ToResponse() IdeaResponse {
	return IdeaResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Icon:        i.Icon,
		BgColor:     i.BgColor,
		Category:    i.Category,
		IdeaType:    i.IdeaType,
		Chain:       i.Chain,
		Tags:        i.Tags,
		Messages:    i.DecodeMessages(),
		Launch:      i.DecodeLaunch(),
		CreatorID:   i.CreatorID,
		Deployer:    i.Deployer,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
