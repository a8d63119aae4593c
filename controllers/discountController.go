package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AnasFahiem/RA-Store-sub000/initializers"
	"github.com/AnasFahiem/RA-Store-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Discount rules are admin-owned global state read by every shopper; all
// mutations below sit behind RequireAuth + RequireAdmin in the routes.

func CreateDiscountRule(ctx *gin.Context) {
	var rule models.DiscountRule
	if err := ctx.ShouldBindJSON(&rule); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if rule.MinQuantity < 1 {
		respondWithError(ctx, http.StatusBadRequest, "minQuantity must be at least 1", nil)
		return
	}
	if rule.DiscountValue <= 0 {
		respondWithError(ctx, http.StatusBadRequest, "discountValue must be positive", nil)
		return
	}

	if err := initializers.DB.Create(&rule).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create discount rule", err)
		return
	}

	ctx.JSON(http.StatusCreated, rule)
}

func GetDiscountRules(ctx *gin.Context) {
	var rules []models.DiscountRule
	if result := initializers.DB.Order("created_at asc").Find(&rules); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch discount rules", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"rules": rules})
}

// GetActiveDiscountRules is the public listing the bundle builder uses to
// preview tiers. Ordered by creation so equal-minQuantity ties resolve the
// same way the pricing engine resolves them.
func GetActiveDiscountRules(ctx *gin.Context) {
	var rules []models.DiscountRule
	if result := initializers.DB.Where("is_active = ?", true).Order("created_at asc").Find(&rules); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch discount rules", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"rules": rules})
}

func UpdateDiscountRule(ctx *gin.Context) {
	ruleId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid rule ID", err)
		return
	}

	var rule models.DiscountRule
	if err := initializers.DB.First(&rule, ruleId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Discount rule not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve discount rule", err)
		}
		return
	}

	var update struct {
		Name             *string  `json:"name"`
		MinQuantity      *int     `json:"minQuantity"`
		DiscountType     *string  `json:"discountType"`
		DiscountValue    *float64 `json:"discountValue"`
		RequiredCategory *string  `json:"requiredCategory"`
		IsActive         *bool    `json:"isActive"`
	}
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	changes := map[string]any{}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.MinQuantity != nil {
		changes["min_quantity"] = *update.MinQuantity
	}
	if update.DiscountType != nil {
		changes["discount_type"] = *update.DiscountType
	}
	if update.DiscountValue != nil {
		changes["discount_value"] = *update.DiscountValue
	}
	if update.RequiredCategory != nil {
		changes["required_category"] = *update.RequiredCategory
	}
	if update.IsActive != nil {
		changes["is_active"] = *update.IsActive
	}

	if err := initializers.DB.Model(&rule).Updates(changes).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update discount rule", err)
		return
	}

	ctx.JSON(http.StatusOK, rule)
}

func DeleteDiscountRule(ctx *gin.Context) {
	ruleId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid rule ID", err)
		return
	}

	if result := initializers.DB.Delete(&models.DiscountRule{}, ruleId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete discount rule", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Discount rule deleted successfully."})
}
