// internal/handlers/wardrobe.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ecowardrobe/eco-wardrobe-backend/internal/services"
	"github.com/ecowardrobe/eco-wardrobe-backend/internal/utils"
)

type WardrobeHandler struct {
	wardrobeService *services.WardrobeService
	shareService    *services.ShareService
}

func NewWardrobeHandler(wardrobeService *services.WardrobeService, shareService *services.ShareService) *WardrobeHandler {
	return &WardrobeHandler{
		wardrobeService: wardrobeService,
		shareService:    shareService,
	}
}

// GET /wardrobe
func (h *WardrobeHandler) GetOwnWardrobe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	products, err := h.wardrobeService.GetOwnWardrobe(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.NotFoundResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// GET /wardrobe/saved
func (h *WardrobeHandler) GetSavedWardrobes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	wardrobes, err := h.wardrobeService.GetSavedWardrobes(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.NotFoundResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"wardrobes": wardrobes,
	})
}

// GET /wardrobe/influencers
func (h *WardrobeHandler) GetInfluencerWardrobes(c *gin.Context) {
	wardrobes, err := h.wardrobeService.GetInfluencerWardrobes()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"wardrobes": wardrobes,
	})
}

// POST /wardrobe/share
func (h *WardrobeHandler) IssueShare(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	token, err := h.shareService.IssueShare(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.NotFoundResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":         token.ID,
		"share_code": token.Code,
	})
}

// POST /wardrobe/redeem
func (h *WardrobeHandler) RedeemShare(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		ShareCode string `json:"share_code" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	link, err := h.shareService.RedeemShare(req.ShareCode, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrShareCodeNotFound), errors.Is(err, services.ErrUserNotFound):
			utils.NotFoundResponse(c, err.Error())
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"link": link,
	})
}
