package database

import (
	"errors"
	"time"

	"github.com/haveanidea/api/internal/models"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ErrNoFieldsToUpdate is returned when a patch carries none of the mutable
// fields. An empty patch is an input error, never a silent no-op.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

type IdeaFilter struct {
	Category *string
	Chain    *string
	IdeaType *string
	Page     int
	Limit    int
}

func (f IdeaFilter) limitOffset() (int, int) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

// ListIdeas assembles the filter query with chained clauses so each bound
// value travels with its own fragment; there is no separate parameter list
// that could drift out of order.
func (d *Database) ListIdeas(f IdeaFilter) ([]models.Idea, error) {
	q := d.db.Model(&models.Idea{})

	if f.Category != nil {
		q = q.Where("category LIKE ?", "%"+*f.Category+"%")
	}
	if f.Chain != nil {
		q = q.Where("chain = ?", *f.Chain)
	}
	if f.IdeaType != nil {
		q = q.Where("idea_type LIKE ?", "%"+*f.IdeaType+"%")
	}

	limit, offset := f.limitOffset()

	var ideas []models.Idea
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ideas).Error
	if err != nil {
		return nil, err
	}
	return ideas, nil
}

func (d *Database) GetIdea(id uint) (*models.Idea, error) {
	idea := models.Idea{}
	if err := d.db.First(&idea, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

type NewIdea struct {
	Name        string
	Description string
	Icon        string
	BgColor     *string
	Category    *string
	IdeaType    *string
	Chain       *string
	Tags        *string
}

// CreateIdea seeds the message history with a single entry derived from the
// description. The creator becomes creator_id and their wallet the deployer.
func (d *Database) CreateIdea(in NewIdea, creatorID uint, deployerWallet string) (*models.Idea, error) {
	messages, err := models.EncodeMessages([]models.IdeaMessage{{
		Title:   in.Description,
		Created: time.Now().Unix(),
		Href:    "#",
	}})
	if err != nil {
		return nil, err
	}

	idea := models.Idea{
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
		BgColor:     in.BgColor,
		Category:    in.Category,
		IdeaType:    in.IdeaType,
		Chain:       in.Chain,
		Tags:        in.Tags,
		Messages:    messages,
		CreatorID:   creatorID,
		Deployer:    &deployerWallet,
	}

	if err := d.db.Create(&idea).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

type IdeaPatch struct {
	Name        *string
	Description *string
	Icon        *string
	BgColor     *string
	Category    *string
	IdeaType    *string
	Chain       *string
}

// UpdateIdeaFields applies the present patch fields in a single UPDATE.
// updated_at is refreshed by gorm as part of the same statement.
func (d *Database) UpdateIdeaFields(id uint, patch IdeaPatch) (*models.Idea, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Icon != nil {
		updates["icon"] = *patch.Icon
	}
	if patch.BgColor != nil {
		updates["bg_color"] = *patch.BgColor
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.IdeaType != nil {
		updates["idea_type"] = *patch.IdeaType
	}
	if patch.Chain != nil {
		updates["chain"] = *patch.Chain
	}

	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	if err := d.db.Model(&models.Idea{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return d.GetIdea(id)
}

type LaunchPatch struct {
	PriceEth        *float64
	FundingGoalEth  *float64
	RevenueSharePct *float64
	Twitter         *string
	Discord         *string
	Telegram        *string
}

// ReplaceLaunchParams overwrites the launch sub-document wholesale. This is
// deliberately NOT a field merge like UpdateIdeaFields: fields absent from
// the patch are dropped even if a prior document held them. A patch carrying
// only a twitter handle wipes any stored price.
func (d *Database) ReplaceLaunchParams(id uint, patch LaunchPatch) error {
	launch := models.LaunchParams{
		PriceEth:        patch.PriceEth,
		FundingGoalEth:  patch.FundingGoalEth,
		RevenueSharePct: patch.RevenueSharePct,
		Contacts: &models.LaunchContacts{
			Twitter:  patch.Twitter,
			Discord:  patch.Discord,
			Telegram: patch.Telegram,
		},
	}

	encoded, err := models.EncodeLaunch(&launch)
	if err != nil {
		return err
	}

	return d.db.Model(&models.Idea{}).Where("id = ?", id).Update("launch", encoded).Error
}

func (d *Database) DeleteIdea(id uint) error {
	return d.db.Delete(&models.Idea{}, "id = ?", id).Error
}
