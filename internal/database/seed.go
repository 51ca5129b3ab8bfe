package database

import (
	"time"

	"github.com/haveanidea/api/internal/models"
)

const demoWallet = "0x1234567890abcdef1234567890ABCDEF12345678"

// SeedDemoData fills an empty ideas table with a few showcase records.
// It is a no-op when any ideas already exist.
func (d *Database) SeedDemoData() error {
	var count int64
	if err := d.db.Model(&models.Idea{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	user, err := d.GetOrCreateUser(demoWallet)
	if err != nil {
		return err
	}

	type demoIdea struct {
		name, description, icon, bgColor, category, ideaType, chain, tags string
		launch                                                           *models.LaunchParams
	}

	price := 0.1
	goal := 10.0
	share := 10.0
	twitter := "@example"
	nftLaunch := &models.LaunchParams{
		PriceEth:        &price,
		FundingGoalEth:  &goal,
		RevenueSharePct: &share,
		Contacts:        &models.LaunchContacts{Twitter: &twitter},
	}

	demos := []demoIdea{
		{"SOL SZN", "Blockchain-verified business card system for Web3 professionals", "🪪", "#e8f0ff", "NFT Ideas", "nft", "eth", "blockchain,nft,business", nftLaunch},
		{"Pump It Hard", "Growth hacking platform with tokenized rewards", "🚀", "#eefde7", "Free Ideas", "free", "eth", "growth,rewards,token", nil},
		{"Loan Agreement", "Smart contract template generator with NFT certificates", "📄", "#fff7e6", "NFT Ideas", "nft", "sol", "smartcontract,legal,nft", nftLaunch},
		{"SOLCAR", "Ride-sharing loyalty points on blockchain", "🚗", "#e6f7ff", "Free Ideas", "free", "bsc", "rideshare,loyalty,blockchain", nil},
	}

	for _, demo := range demos {
		messages, err := models.EncodeMessages([]models.IdeaMessage{{
			Title:   demo.description,
			Created: time.Now().Unix(),
			Href:    "#",
		}})
		if err != nil {
			return err
		}

		var launch *string
		if demo.launch != nil {
			encoded, err := models.EncodeLaunch(demo.launch)
			if err != nil {
				return err
			}
			launch = &encoded
		}

		bgColor, category, ideaType, chain, tags := demo.bgColor, demo.category, demo.ideaType, demo.chain, demo.tags
		deployer := demoWallet
		idea := models.Idea{
			Name:        demo.name,
			Description: demo.description,
			Icon:        demo.icon,
			BgColor:     &bgColor,
			Category:    &category,
			IdeaType:    &ideaType,
			Chain:       &chain,
			Tags:        &tags,
			Messages:    messages,
			Launch:      launch,
			CreatorID:   user.ID,
			Deployer:    &deployer,
		}
		if err := d.db.Create(&idea).Error; err != nil {
			return err
		}
	}

	return nil
}
