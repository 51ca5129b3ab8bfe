package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haveanidea/api/internal/models"
)

const (
	walletCreator  = "0x1111111111111111111111111111111111111111"
	walletDeployer = "0x2222222222222222222222222222222222222222"
	walletStranger = "0x3333333333333333333333333333333333333333"
)

func matrixIdea() *models.Idea {
	deployer := walletDeployer
	return &models.Idea{ID: 1, CreatorID: 10, Deployer: &deployer}
}

func TestCanUpdateIdea(t *testing.T) {
	idea := matrixIdea()
	creator := &models.User{ID: 10, WalletAddress: walletCreator}
	stranger := &models.User{ID: 11, WalletAddress: walletStranger}

	assert.True(t, CanUpdateIdea(creator, walletCreator, idea), "creator may update core fields")
	assert.True(t, CanUpdateIdea(stranger, walletDeployer, idea), "deployer wallet may update core fields")
	assert.False(t, CanUpdateIdea(stranger, walletStranger, idea), "unrelated caller is rejected")
	assert.False(t, CanUpdateIdea(nil, walletStranger, idea))
}

func TestCanUpdateLaunch(t *testing.T) {
	idea := matrixIdea()

	assert.True(t, CanUpdateLaunch(walletDeployer, idea), "deployer updates launch")
	assert.False(t, CanUpdateLaunch(walletCreator, idea), "creator alone is not enough for launch")

	noDeployer := &models.Idea{ID: 2, CreatorID: 10}
	assert.False(t, CanUpdateLaunch(walletDeployer, noDeployer))
}

func TestCanDeleteIdea(t *testing.T) {
	idea := matrixIdea()
	creator := &models.User{ID: 10, WalletAddress: walletCreator}
	deployerUser := &models.User{ID: 12, WalletAddress: walletDeployer}

	assert.True(t, CanDeleteIdea(creator, idea))
	assert.False(t, CanDeleteIdea(deployerUser, idea), "deployer may not delete")
	assert.False(t, CanDeleteIdea(nil, idea))
}

// Wallet comparison is case-sensitive on purpose: addresses differing only
// in letter case are distinct authorization subjects.
func TestWalletComparisonIsCaseSensitive(t *testing.T) {
	deployer := "0xAbC4567890abcdef1234567890abcdef12345678"
	idea := &models.Idea{ID: 3, CreatorID: 10, Deployer: &deployer}

	assert.True(t, CanUpdateLaunch(deployer, idea))
	assert.False(t, CanUpdateLaunch("0xabc4567890abcdef1234567890abcdef12345678", idea))
}
