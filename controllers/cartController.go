package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	cartpolicy "github.com/AnasFahiem/RA-Store-sub000/cart"
	"github.com/AnasFahiem/RA-Store-sub000/initializers"
	"github.com/AnasFahiem/RA-Store-sub000/models"
	"github.com/AnasFahiem/RA-Store-sub000/pricing"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const sessionHeader = "X-Cart-Session"

// userIDFromCtx returns the authenticated user's id, or 0 for guests.
func userIDFromCtx(ctx *gin.Context) int {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return 0
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return 0
	}
	if id, ok := claims["user_id"].(float64); ok {
		return int(id)
	}
	return 0
}

// resolveCart finds the caller's cart: by user id when authenticated, by
// the session header for guests. With create set, a missing cart is created
// implicitly (and a session token minted for guests without one).
func resolveCart(ctx *gin.Context, create bool) (models.Cart, bool, error) {
	var cart models.Cart

	userId := userIDFromCtx(ctx)
	sessionToken := ctx.GetHeader(sessionHeader)

	// Anonymous caller with no session yet: nothing to look up.
	if userId == 0 && sessionToken == "" {
		if !create {
			return cart, false, nil
		}
		cart = models.Cart{SessionToken: uuid.NewString()}
		if err := initializers.DB.Create(&cart).Error; err != nil {
			return cart, false, err
		}
		return cart, true, nil
	}

	query := initializers.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at asc")
	})
	if userId != 0 {
		query = query.Where("user_id = ?", userId)
	} else {
		query = query.Where("session_token = ?", sessionToken)
	}

	err := query.First(&cart).Error
	if err == nil {
		return cart, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return cart, false, err
	}
	if !create {
		return cart, false, nil
	}

	cart = models.Cart{UserID: userId, SessionToken: sessionToken}
	if err := initializers.DB.Create(&cart).Error; err != nil {
		return cart, false, err
	}
	return cart, true, nil
}

// refreshCart re-reads the persisted cart. Every mutation responds with
// this snapshot so clients reconcile their optimistic state against what
// was actually stored.
func refreshCart(cartID uint) (models.Cart, error) {
	var cart models.Cart
	err := initializers.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at asc")
	}).First(&cart, cartID).Error
	return cart, err
}

func respondWithCart(ctx *gin.Context, cartID uint) {
	cart, err := refreshCart(cartID)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch cart", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}

// cartLines converts persisted cart rows into pricing lines, resolving each
// product's category for rule eligibility.
func cartLines(items []models.CartItem) ([]pricing.Line, error) {
	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := loadProducts(ids)
	if err != nil {
		return nil, err
	}

	lines := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.Line{
			ProductID:           item.ProductID,
			Category:            products[item.ProductID].Category,
			Variant:             item.Variant,
			Quantity:            item.Quantity,
			Price:               item.Price,
			BundleID:            item.BundleID,
			BundlePriceOverride: item.BundlePriceOverride,
		})
	}
	return lines, nil
}

func activeDiscountRules() ([]models.DiscountRule, error) {
	var rules []models.DiscountRule
	err := initializers.DB.Where("is_active = ?", true).Order("created_at asc").Find(&rules).Error
	return rules, err
}

// upsertCartItem adds quantity to the row matching the (product, variant,
// bundle) key, creating the row when absent. The increment runs as a single
// atomic UPDATE so concurrent adds cannot lose each other's writes.
func upsertCartItem(cartID uint, item models.CartItem) error {
	query := initializers.DB.Where("cart_id = ? AND product_id = ? AND variant = ?",
		cartID, item.ProductID, item.Variant)
	if item.BundleID == nil {
		query = query.Where("bundle_id IS NULL")
	} else {
		query = query.Where("bundle_id = ?", *item.BundleID)
	}

	var existing models.CartItem
	err := query.First(&existing).Error
	if err == nil {
		return initializers.DB.Model(&models.CartItem{}).
			Where("id = ?", existing.ID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity)).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	item.ID = 0
	item.CartID = int(cartID)
	return initializers.DB.Create(&item).Error
}

func GetCart(ctx *gin.Context) {
	cart, found, err := resolveCart(ctx, false)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch cart", err)
		return
	}
	if !found {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": models.Cart{Items: []models.CartItem{}}})
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}

// QuoteCart prices the caller's cart through the same engine the bundle
// builder and checkout use. An invalid promo never blocks the quote: the
// cart stays at its pre-promo total and the failure kind is reported
// alongside.
func QuoteCart(ctx *gin.Context) {
	cart, found, err := resolveCart(ctx, false)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch cart", err)
		return
	}
	if !found {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"pricing": pricing.ComputeTotal(nil, nil, nil)})
		return
	}

	lines, err := cartLines(cart.Items)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to load cart products", err)
		return
	}

	rules, err := activeDiscountRules()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to load discount rules", err)
		return
	}

	var promoDiscount *pricing.Discount
	promoError := ""
	if code := ctx.Query("promo"); code != "" {
		promo, err := findPromoByCode(code)
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to validate promo code", err)
			return
		}
		discount, err := pricing.ValidatePromo(promo, time.Now())
		if err != nil {
			promoError = promoErrorKind(err)
		} else {
			promoDiscount = &discount
		}
	}

	result := pricing.ComputeTotal(lines, rules, promoDiscount)
	response := gin.H{"pricing": result}
	if promoError != "" {
		response["promoError"] = promoError
	}
	sendJSONResponse(ctx, http.StatusOK, response)
}

func AddCartItem(ctx *gin.Context) {
	var body struct {
		ProductID int    `json:"productId" binding:"required"`
		Variant   string `json:"variant"`
		Quantity  int    `json:"quantity" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, body.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
		}
		return
	}

	cart, _, err := resolveCart(ctx, true)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to resolve cart", err)
		return
	}

	imageUrl := ""
	var image models.ProductImage
	if err := initializers.DB.Where("product_id = ?", product.ID).Order("position asc").First(&image).Error; err == nil {
		imageUrl = image.Url
	}

	item := models.CartItem{
		ProductID:       body.ProductID,
		ProductName:     product.Name,
		Variant:         body.Variant,
		Quantity:        body.Quantity,
		Price:           product.Price,
		ProductImageUrl: imageUrl,
	}
	if err := upsertCartItem(cart.ID, item); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to add item to cart", err)
		return
	}

	ctx.Header(sessionHeader, cart.SessionToken)
	respondWithCart(ctx, cart.ID)
}

func UpdateCartItemQuantity(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid cart item ID", err)
		return
	}

	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cart, found, err := resolveCart(ctx, false)
	if err != nil || !found {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		return
	}

	var item models.CartItem
	if err := initializers.DB.Where("id = ? AND cart_id = ?", itemId, cart.ID).First(&item).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		return
	}

	// Quantity zero or below means the row goes away.
	if body.Quantity <= 0 {
		if err := initializers.DB.Delete(&item).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to remove cart item", err)
			return
		}
	} else if err := initializers.DB.Model(&item).Update("quantity", body.Quantity).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update cart item", err)
		return
	}

	respondWithCart(ctx, cart.ID)
}

func DeleteCartItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid cart item ID", err)
		return
	}

	cart, found, err := resolveCart(ctx, false)
	if err != nil || !found {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		return
	}

	if result := initializers.DB.Where("id = ? AND cart_id = ?", itemId, cart.ID).Delete(&models.CartItem{}); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to remove cart item", result.Error)
		return
	}

	respondWithCart(ctx, cart.ID)
}

// AddBundleToCart explodes the bundle into one tagged row per line item.
// Re-adding the same bundle increments quantities on the existing tagged
// rows instead of duplicating them.
func AddBundleToCart(ctx *gin.Context) {
	var body struct {
		BundleID int `json:"bundleId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var bundle models.Bundle
	if err := initializers.DB.Preload("Items").First(&bundle, body.BundleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Bundle not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to load bundle", err)
		}
		return
	}
	if len(bundle.Items) == 0 {
		sendErrorResponse(ctx, http.StatusUnprocessableEntity, "Bundle has no items")
		return
	}

	products, err := loadProducts(bundleProductIDs(bundle))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to load bundle products", err)
		return
	}

	userCart, _, err := resolveCart(ctx, true)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to resolve cart", err)
		return
	}

	for _, item := range cartpolicy.ExplodeBundle(bundle, products) {
		if err := upsertCartItem(userCart.ID, item); err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to add bundle to cart", err)
			return
		}
	}

	ctx.Header(sessionHeader, userCart.SessionToken)
	respondWithCart(ctx, userCart.ID)
}

// RemoveBundleFromCart deletes exactly the rows tagged with the bundle id.
// A standalone row for the same product is never touched.
func RemoveBundleFromCart(ctx *gin.Context) {
	bundleId, err := strconv.Atoi(ctx.Param("bundleId"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid bundle ID", err)
		return
	}

	userCart, found, err := resolveCart(ctx, false)
	if err != nil || !found {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		return
	}

	if result := initializers.DB.Where("cart_id = ? AND bundle_id = ?", userCart.ID, bundleId).Delete(&models.CartItem{}); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to remove bundle from cart", result.Error)
		return
	}

	respondWithCart(ctx, userCart.ID)
}

func ClearCart(ctx *gin.Context) {
	userCart, found, err := resolveCart(ctx, false)
	if err != nil || !found {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		return
	}

	if err := initializers.DB.Where("cart_id = ?", userCart.ID).Delete(&models.CartItem{}).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to clear cart", err)
		return
	}

	respondWithCart(ctx, userCart.ID)
}

// MergeCart folds a guest cart into the authenticated user's cart at login.
// Quantities for matching (product, variant, bundle) keys are summed;
// neither side's rows are dropped.
func MergeCart(ctx *gin.Context) {
	userId := userIDFromCtx(ctx)
	if userId == 0 {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Login required to merge carts")
		return
	}

	var body struct {
		Items []models.CartItem `json:"items"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	userCart, _, err := resolveCart(ctx, true)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to resolve cart", err)
		return
	}

	merged := cartpolicy.Merge(body.Items, userCart.Items)

	tx := initializers.DB.Begin()
	if err := tx.Where("cart_id = ?", userCart.ID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		respondWithError(ctx, http.StatusInternalServerError, "Failed to merge carts", err)
		return
	}
	for _, item := range merged {
		item.ID = 0
		item.CartID = int(userCart.ID)
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			respondWithError(ctx, http.StatusInternalServerError, "Failed to merge carts", err)
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to merge carts", err)
		return
	}

	log.Printf("Merged %d guest cart items into cart %d", len(body.Items), userCart.ID)
	respondWithCart(ctx, userCart.ID)
}
