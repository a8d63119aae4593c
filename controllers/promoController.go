package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AnasFahiem/RA-Store-sub000/initializers"
	"github.com/AnasFahiem/RA-Store-sub000/models"
	"github.com/AnasFahiem/RA-Store-sub000/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// promoErrorKind maps validation failures to the stable error kinds clients
// key their messages on.
func promoErrorKind(err error) string {
	switch {
	case errors.Is(err, pricing.ErrPromoNotFound):
		return "PromoNotFound"
	case errors.Is(err, pricing.ErrPromoExpired):
		return "PromoExpired"
	case errors.Is(err, pricing.ErrPromoUsageExceeded):
		return "PromoUsageExceeded"
	case errors.Is(err, pricing.ErrPromoInactive):
		return "PromoInactive"
	default:
		return "PromoInvalid"
	}
}

// findPromoByCode looks a promo up by its canonical uppercase form. Returns
// nil without error when no row matches.
func findPromoByCode(code string) (*models.PromoCode, error) {
	var promo models.PromoCode
	err := initializers.DB.Where("code = ?", pricing.NormalizeCode(code)).First(&promo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promo, nil
}

func CreatePromoCode(ctx *gin.Context) {
	var promo models.PromoCode
	if err := ctx.ShouldBindJSON(&promo); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	promo.Code = pricing.NormalizeCode(promo.Code)
	if promo.Code == "" {
		respondWithError(ctx, http.StatusBadRequest, "Promo code cannot be empty", nil)
		return
	}
	if promo.DiscountValue <= 0 {
		respondWithError(ctx, http.StatusBadRequest, "discountValue must be positive", nil)
		return
	}
	promo.UsedCount = 0

	if err := initializers.DB.Create(&promo).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create promo code", err)
		return
	}

	ctx.JSON(http.StatusCreated, promo)
}

func GetPromoCodes(ctx *gin.Context) {
	var promos []models.PromoCode
	if result := initializers.DB.Order("created_at desc").Find(&promos); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch promo codes", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"promoCodes": promos})
}

// ValidatePromoCode is the shopper-facing check used by the cart and the
// checkout form. Failures come back as 200 with {valid:false, error} so an
// invalid code degrades gracefully instead of blocking checkout.
func ValidatePromoCode(ctx *gin.Context) {
	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	promo, err := findPromoByCode(body.Code)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to validate promo code", err)
		return
	}

	discount, err := pricing.ValidatePromo(promo, time.Now())
	if err != nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"valid": false, "error": promoErrorKind(err)})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"valid": true, "promo": discount})
}

func UpdatePromoCode(ctx *gin.Context) {
	promoId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid promo code ID", err)
		return
	}

	var promo models.PromoCode
	if err := initializers.DB.First(&promo, promoId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Promo code not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve promo code", err)
		}
		return
	}

	var update struct {
		Description   *string    `json:"description"`
		DiscountType  *string    `json:"discountType"`
		DiscountValue *float64   `json:"discountValue"`
		MaxUses       *int       `json:"maxUses"`
		ExpiresAt     *time.Time `json:"expiresAt"`
		IsActive      *bool      `json:"isActive"`
	}
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	changes := map[string]any{}
	if update.Description != nil {
		changes["description"] = *update.Description
	}
	if update.DiscountType != nil {
		changes["discount_type"] = *update.DiscountType
	}
	if update.DiscountValue != nil {
		changes["discount_value"] = *update.DiscountValue
	}
	if update.MaxUses != nil {
		changes["max_uses"] = *update.MaxUses
	}
	if update.ExpiresAt != nil {
		changes["expires_at"] = *update.ExpiresAt
	}
	if update.IsActive != nil {
		changes["is_active"] = *update.IsActive
	}

	if err := initializers.DB.Model(&promo).Updates(changes).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update promo code", err)
		return
	}

	ctx.JSON(http.StatusOK, promo)
}

func DeletePromoCode(ctx *gin.Context) {
	promoId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid promo code ID", err)
		return
	}

	if result := initializers.DB.Delete(&models.PromoCode{}, promoId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete promo code", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Promo code deleted successfully."})
}
