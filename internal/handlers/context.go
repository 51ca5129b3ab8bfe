package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haveanidea/api/internal/database"
	"github.com/haveanidea/api/internal/middleware"
	"github.com/haveanidea/api/internal/models"
	"github.com/haveanidea/api/pkg/apperrors"
)

// callerUser maps the authenticated wallet (set by the auth middleware) to
// its user row.
func callerUser(c *gin.Context, db *database.Database) (*models.User, string, error) {
	wallet, ok := middleware.CallerWallet(c)
	if !ok {
		return nil, "", apperrors.Unauthorized("missing or invalid token")
	}
	user, err := db.FindUserByWallet(wallet)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.Unauthorized("unknown user")
		}
		return nil, "", apperrors.Wrap(apperrors.CodeInternal, "could not load user", err)
	}
	return user, wallet, nil
}
