package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AnasFahiem/RA-Store-sub000/initializers"
	"github.com/AnasFahiem/RA-Store-sub000/models"
	"github.com/AnasFahiem/RA-Store-sub000/pricing"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// userRole reads the role claim RequireAuth stored in the context.
func userRole(ctx *gin.Context) string {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return ""
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

// loadProducts fetches the products referenced by a set of ids into a map
// keyed by product id.
func loadProducts(ids []int) (map[int]models.Product, error) {
	products := make(map[int]models.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var rows []models.Product
	if err := initializers.DB.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, p := range rows {
		products[int(p.ID)] = p
	}
	return products, nil
}

func bundleProductIDs(bundle models.Bundle) []int {
	ids := make([]int, 0, len(bundle.Items))
	for _, item := range bundle.Items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

// CreateBundle persists a curated or shopper-built bundle. Empty bundles
// are rejected outright; only admins may create admin_fixed bundles or set
// a price override.
func CreateBundle(ctx *gin.Context) {
	var bundle models.Bundle
	if err := ctx.ShouldBindJSON(&bundle); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if len(bundle.Items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "A bundle must contain at least one item")
		return
	}

	role := userRole(ctx)
	isAdmin := role == "admin" || role == "owner"
	if (bundle.Type == models.BundleAdminFixed || bundle.PriceOverride != nil) && !isAdmin {
		sendErrorResponse(ctx, http.StatusForbidden, "Admin access required")
		return
	}

	// Every referenced product has to exist before the bundle is priced.
	products, err := loadProducts(bundleProductIDs(bundle))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to validate bundle products", err)
		return
	}
	for _, item := range bundle.Items {
		if _, ok := products[item.ProductID]; !ok {
			sendErrorResponse(ctx, http.StatusBadRequest, "Bundle references a product that does not exist")
			return
		}
	}

	if err := initializers.DB.Create(&bundle).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create bundle", err)
		return
	}

	ctx.JSON(http.StatusCreated, bundle)
}

func GetBundles(ctx *gin.Context) {
	query := initializers.DB.Preload("Items")
	if bundleType := ctx.Query("type"); bundleType != "" {
		query = query.Where("type = ?", bundleType)
	} else {
		// The catalog only shows curated bundles by default.
		query = query.Where("type = ?", models.BundleAdminFixed)
	}

	var bundles []models.Bundle
	if result := query.Order("created_at desc").Find(&bundles); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch bundles", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"bundles": bundles})
}

func getBundleByID(ctx *gin.Context) (models.Bundle, bool) {
	var bundle models.Bundle
	bundleId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid bundle ID", err)
		return bundle, false
	}

	result := initializers.DB.Preload("Items").First(&bundle, bundleId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Bundle not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve bundle", result.Error)
		}
		return bundle, false
	}
	return bundle, true
}

func GetBundle(ctx *gin.Context) {
	bundle, ok := getBundleByID(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, bundle)
}

// GetBundleQuote prices a bundle against current catalog prices: the
// computed sum, the final price after any override, and the saving shown
// to the shopper.
func GetBundleQuote(ctx *gin.Context) {
	bundle, ok := getBundleByID(ctx)
	if !ok {
		return
	}

	products, err := loadProducts(bundleProductIDs(bundle))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to load bundle products", err)
		return
	}

	quote, err := pricing.QuoteBundle(bundle, products)
	if err != nil {
		sendErrorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"bundleId": bundle.ID, "quote": quote})
}

func UpdateBundle(ctx *gin.Context) {
	bundle, ok := getBundleByID(ctx)
	if !ok {
		return
	}

	var update struct {
		Name          *string             `json:"name"`
		Description   *string             `json:"description"`
		PriceOverride *float64            `json:"priceOverride"`
		ClearOverride bool                `json:"clearOverride"`
		Items         []models.BundleItem `json:"items"`
	}
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if update.Items != nil && len(update.Items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "A bundle must contain at least one item")
		return
	}

	changes := map[string]any{}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}
	if update.PriceOverride != nil {
		changes["price_override"] = *update.PriceOverride
	}
	if update.ClearOverride {
		changes["price_override"] = nil
	}

	tx := initializers.DB.Begin()
	if len(changes) > 0 {
		if err := tx.Model(&bundle).Updates(changes).Error; err != nil {
			tx.Rollback()
			respondWithError(ctx, http.StatusInternalServerError, "Failed to update bundle", err)
			return
		}
	}

	if update.Items != nil {
		if err := tx.Where("bundle_id = ?", bundle.ID).Delete(&models.BundleItem{}).Error; err != nil {
			tx.Rollback()
			respondWithError(ctx, http.StatusInternalServerError, "Failed to replace bundle items", err)
			return
		}
		for _, item := range update.Items {
			item.ID = 0
			item.BundleID = int(bundle.ID)
			if err := tx.Create(&item).Error; err != nil {
				tx.Rollback()
				respondWithError(ctx, http.StatusInternalServerError, "Failed to replace bundle items", err)
				return
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save bundle", err)
		return
	}

	initializers.DB.Preload("Items").First(&bundle, bundle.ID)
	ctx.JSON(http.StatusOK, bundle)
}

// DeleteBundle removes a bundle; its line items cascade at the database.
func DeleteBundle(ctx *gin.Context) {
	bundleId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid bundle ID", err)
		return
	}

	if result := initializers.DB.Delete(&models.Bundle{}, bundleId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete bundle", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Bundle deleted successfully."})
}

func UploadBundleCover(ctx *gin.Context) {
	bundleIdStr := ctx.PostForm("bundleId")
	bundleId, err := strconv.Atoi(bundleIdStr)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid bundleId", err)
		return
	}

	var bundle models.Bundle
	if err := initializers.DB.First(&bundle, bundleId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Bundle not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate bundle", err)
		}
		return
	}

	urls, _, err := uploadImages(ctx, "bundle-"+bundleIdStr)
	if err != nil || len(urls) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Upload failed", err)
		return
	}

	if err := initializers.DB.Model(&bundle).Update("cover_image_url", urls[0]).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save cover image", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Cover image uploaded", "url": urls[0]})
}
