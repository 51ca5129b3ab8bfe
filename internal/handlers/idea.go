package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haveanidea/api/internal/cache"
	"github.com/haveanidea/api/internal/database"
	"github.com/haveanidea/api/internal/handlers/dto"
	"github.com/haveanidea/api/internal/middleware"
	"github.com/haveanidea/api/internal/models"
	"github.com/haveanidea/api/internal/policy"
	"github.com/haveanidea/api/pkg/apperrors"
)

type IdeaHandler struct {
	db    *database.Database
	cache *cache.IdeaCache
}

func NewIdeaHandler(db *database.Database, ideaCache *cache.IdeaCache) *IdeaHandler {
	return &IdeaHandler{db: db, cache: ideaCache}
}

func parseIdeaID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperrors.InvalidArg("invalid idea id")
	}
	return uint(id), nil
}

// loadIdea resolves the target idea first, so a missing resource is reported
// as NotFound before any authorization check can turn it into Forbidden.
func (h *IdeaHandler) loadIdea(id uint) (*models.Idea, error) {
	idea, err := h.db.GetIdea(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("idea not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, "could not load idea", err)
	}
	return idea, nil
}

func (h *IdeaHandler) List(c *gin.Context) {
	var q dto.ListIdeasQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, apperrors.InvalidArg("invalid query parameters"))
		return
	}

	ideas, err := h.db.ListIdeas(database.IdeaFilter{
		Category: q.Category,
		Chain:    q.Chain,
		IdeaType: q.IdeaType,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeInternal, "could not list ideas", err))
		return
	}

	responses := make([]models.IdeaResponse, 0, len(ideas))
	for i := range ideas {
		responses = append(responses, ideas[i].ToResponse())
	}

	respondOK(c, responses, "")
}

func (h *IdeaHandler) Get(c *gin.Context) {
	id, err := parseIdeaID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if raw, ok := h.cache.Get(c.Request.Context(), id); ok {
		respondOK(c, json.RawMessage(raw), "")
		return
	}

	idea, err := h.loadIdea(id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := idea.ToResponse()
	if raw, err := json.Marshal(resp); err == nil {
		h.cache.Set(c.Request.Context(), id, raw)
	}

	respondOK(c, resp, "")
}

func (h *IdeaHandler) Create(c *gin.Context) {
	user, wallet, err := callerUser(c, h.db)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArg("name, description and icon are required"))
		return
	}

	idea, err := h.db.CreateIdea(database.NewIdea{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		BgColor:     req.BgColor,
		Category:    req.Category,
		IdeaType:    req.IdeaType,
		Chain:       req.Chain,
		Tags:        req.Tags,
	}, user.ID, wallet)
	if err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeInternal, "could not create idea", err))
		return
	}

	respondOK(c, idea.ToResponse(), "Idea created successfully")
}

func (h *IdeaHandler) Update(c *gin.Context) {
	id, err := parseIdeaID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	// Existence before authorization: 404 beats 403.
	idea, err := h.loadIdea(id)
	if err != nil {
		respondError(c, err)
		return
	}

	user, wallet, err := callerUser(c, h.db)
	if err != nil {
		respondError(c, err)
		return
	}

	if !policy.CanUpdateIdea(user, wallet, idea) {
		respondError(c, apperrors.Forbidden("not allowed to update this idea"))
		return
	}

	var req dto.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArg("invalid request body"))
		return
	}

	updated, err := h.db.UpdateIdeaFields(id, database.IdeaPatch{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		BgColor:     req.BgColor,
		Category:    req.Category,
		IdeaType:    req.IdeaType,
		Chain:       req.Chain,
	})
	if err != nil {
		if errors.Is(err, database.ErrNoFieldsToUpdate) {
			respondError(c, apperrors.InvalidArg("no fields to update"))
			return
		}
		respondError(c, apperrors.Wrap(apperrors.CodeInternal, "could not update idea", err))
		return
	}

	h.cache.Invalidate(c.Request.Context(), id)

	respondOK(c, updated.ToResponse(), "Idea updated successfully")
}

func (h *IdeaHandler) UpdateLaunch(c *gin.Context) {
	id, err := parseIdeaID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	idea, err := h.loadIdea(id)
	if err != nil {
		respondError(c, err)
		return
	}

	// Launch parameters belong to the deployer alone; no user lookup needed.
	wallet, ok := middleware.CallerWallet(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing or invalid token"))
		return
	}
	if !policy.CanUpdateLaunch(wallet, idea) {
		respondError(c, apperrors.Forbidden("only the deployer can update launch parameters"))
		return
	}

	var req dto.UpdateLaunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArg("invalid request body"))
		return
	}

	err = h.db.ReplaceLaunchParams(id, database.LaunchPatch{
		PriceEth:        req.PriceEth,
		FundingGoalEth:  req.FundingGoalEth,
		RevenueSharePct: req.RevenueSharePct,
		Twitter:         req.Twitter,
		Discord:         req.Discord,
		Telegram:        req.Telegram,
	})
	if err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeInternal, "could not update launch parameters", err))
		return
	}

	h.cache.Invalidate(c.Request.Context(), id)

	respondOK(c, nil, "Launch parameters updated successfully")
}

func (h *IdeaHandler) Delete(c *gin.Context) {
	id, err := parseIdeaID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	idea, err := h.loadIdea(id)
	if err != nil {
		respondError(c, err)
		return
	}

	user, _, err := callerUser(c, h.db)
	if err != nil {
		respondError(c, err)
		return
	}

	if !policy.CanDeleteIdea(user, idea) {
		respondError(c, apperrors.Forbidden("only the creator can delete this idea"))
		return
	}

	if err := h.db.DeleteIdea(id); err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeInternal, "could not delete idea", err))
		return
	}

	h.cache.Invalidate(c.Request.Context(), id)

	respondOK(c, nil, "Idea deleted successfully")
}
