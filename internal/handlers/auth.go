package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haveanidea/api/internal/database"
	"github.com/haveanidea/api/internal/handlers/dto"
	"github.com/haveanidea/api/internal/middleware"
	"github.com/haveanidea/api/pkg/apperrors"
	"github.com/haveanidea/api/pkg/auth"
)

type AuthHandler struct {
	db         *database.Database
	jwtManager *auth.JWTManager
}

func NewAuthHandler(db *database.Database, jwtMgr *auth.JWTManager) *AuthHandler {
	return &AuthHandler{db: db, jwtManager: jwtMgr}
}

// Only the address shape is checked; the signature is accepted as-is.
// Cryptographic wallet verification is explicitly out of scope.
func validWalletShape(address string) bool {
	return len(address) == 42 && strings.HasPrefix(address, "0x")
}

// Login resolves the wallet to a user (creating one on first sight) and
// issues a 24h token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArg("wallet_address is required"))
		return
	}

	if !validWalletShape(req.WalletAddress) {
		respondError(c, apperrors.InvalidArg("invalid wallet address"))
		return
	}

	user, err := h.db.GetOrCreateUser(req.WalletAddress)
	if err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeInternal, "could not resolve user", err))
		return
	}

	token, err := h.jwtManager.Issue(user.WalletAddress)
	if err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeInternal, "could not generate token", err))
		return
	}

	respondOK(c, dto.LoginResponse{Token: token, User: user}, "Login successful")
}

// Profile returns the caller's user record.
func (h *AuthHandler) Profile(c *gin.Context) {
	wallet, ok := middleware.CallerWallet(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing or invalid token"))
		return
	}

	user, err := h.db.FindUserByWallet(wallet)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperrors.NotFound("user not found"))
			return
		}
		respondError(c, apperrors.Wrap(apperrors.CodeInternal, "could not load user", err))
		return
	}

	respondOK(c, user, "")
}
