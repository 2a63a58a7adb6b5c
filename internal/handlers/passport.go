// internal/handlers/passport.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecowardrobe/eco-wardrobe-backend/internal/models"
	"github.com/ecowardrobe/eco-wardrobe-backend/internal/services"
	"github.com/ecowardrobe/eco-wardrobe-backend/internal/utils"
)

type PassportHandler struct {
	userService    *services.UserService
	storageService *services.StorageService
}

func NewPassportHandler(userService *services.UserService, storageService *services.StorageService) *PassportHandler {
	return &PassportHandler{
		userService:    userService,
		storageService: storageService,
	}
}

// POST /passports
func (h *PassportHandler) CreatePassport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.CreatePassportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	passport, err := h.userService.AddProduct(userID, &req)
	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.As(err, &validationErr):
			utils.BadRequestResponse(c, validationErr.Error(), validationErr)
		case errors.Is(err, services.ErrUserNotFound):
			utils.NotFoundResponse(c, err.Error())
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"passport": passport,
	})
}

// GET /passports/:id
func (h *PassportHandler) GetPassport(c *gin.Context) {
	passportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid passport ID", nil)
		return
	}

	passport, err := h.userService.GetProduct(passportID)
	if err != nil {
		if errors.Is(err, services.ErrPassportNotFound) {
			utils.NotFoundResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"passport": passport,
	})
}

// POST /passports/upload-image
func (h *PassportHandler) UploadImage(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "No image uploaded", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read image", err.Error())
		return
	}
	defer file.Close()

	if err := h.storageService.ValidateImage(file); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	options := h.storageService.GetDefaultUploadOptions("passports")
	result, err := h.storageService.UploadFile(file, fileHeader, options)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"image": result,
	})
}
