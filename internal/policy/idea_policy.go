package policy

import "github.com/haveanidea/api/internal/models"

// Policy over the two independent identities on an idea: creator_id (strong
// user reference) and deployer (loosely-typed wallet string). Wallet
// comparison is case-sensitive, matching the rest of the system.

// CanUpdateIdea: core fields may be changed by the creator or the deployer.
func CanUpdateIdea(user *models.User, wallet string, idea *models.Idea) bool {
	if user != nil && user.ID == idea.CreatorID {
		return true
	}
	return idea.Deployer != nil && wallet == *idea.Deployer
}

// CanUpdateLaunch: launch parameters belong to the deployer alone; the
// creator is not enough.
func CanUpdateLaunch(wallet string, idea *models.Idea) bool {
	return idea.Deployer != nil && wallet == *idea.Deployer
}

// CanDeleteIdea: only the creator may delete.
func CanDeleteIdea(user *models.User, idea *models.Idea) bool {
	return user != nil && user.ID == idea.CreatorID
}
