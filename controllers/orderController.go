package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/AnasFahiem/RA-Store-sub000/initializers"
	"github.com/AnasFahiem/RA-Store-sub000/models"
	"github.com/AnasFahiem/RA-Store-sub000/pricing"
	"github.com/AnasFahiem/RA-Store-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

func getPaymentAccessToken() (string, error) {
	consumerKey := os.Getenv("PAYMENT_CONSUMER_KEY")
	consumerSecret := os.Getenv("PAYMENT_CONSUMER_SECRET")

	if consumerKey == "" || consumerSecret == "" {
		return "", fmt.Errorf("payment consumer credentials are not set")
	}

	requestBody := map[string]string{
		"consumer_key":    consumerKey,
		"consumer_secret": consumerSecret,
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(requestBody).
		Post(os.Getenv("PAYMENT_AUTH_URL"))

	if err != nil {
		return "", err
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("payment token request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var response map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}

	token, ok := response["token"].(string)
	if !ok || token == "" {
		return "", fmt.Errorf("token not found in response: %v", response)
	}

	return token, nil
}

// submitPaymentOrder registers the order with the payment gateway and
// returns the redirect URL and tracking id.
func submitPaymentOrder(order models.Order) (redirectURL, trackingID string, err error) {
	token, err := getPaymentAccessToken()
	if err != nil {
		return "", "", err
	}

	paymentOrder := map[string]any{
		"id":           fmt.Sprintf("ORDER-%d", order.ID),
		"currency":     os.Getenv("PAYMENT_CURRENCY"),
		"amount":       pricing.Round2(order.Total),
		"description":  fmt.Sprintf("Payment for order #%d", order.ID),
		"callback_url": os.Getenv("PAYMENT_CALLBACK_URL"),
		"billing_address": map[string]any{
			"email_address": order.Email,
			"phone_number":  order.Phone,
			"first_name":    order.FirstName,
			"last_name":     order.LastName,
			"city":          order.DeliveryLocation,
			"line_1":        order.DeliveryLocation,
		},
	}

	resp, err := resty.New().SetTimeout(30 * time.Second).
		R().
		SetHeaders(map[string]string{
			"Authorization": "Bearer " + token,
			"Accept":        "application/json",
			"Content-Type":  "application/json",
		}).
		SetBody(paymentOrder).
		Post(os.Getenv("PAYMENT_SUBMIT_URL"))

	if err != nil {
		return "", "", err
	}
	if resp.StatusCode() != 200 {
		return "", "", fmt.Errorf("payment submit failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var paymentResp map[string]any
	if err := json.Unmarshal(resp.Body(), &paymentResp); err != nil {
		return "", "", fmt.Errorf("invalid response from payment gateway: %w", err)
	}

	redirectURL, rOK := paymentResp["redirect_url"].(string)
	trackingID, tOK := paymentResp["order_tracking_id"].(string)
	if !rOK || !tOK || redirectURL == "" || trackingID == "" {
		return "", "", fmt.Errorf("incomplete response from payment gateway")
	}
	return redirectURL, trackingID, nil
}

func sendOrderConfirmationEmail(order models.Order) error {
	emailData := utils.EmailData{
		Name:        order.FirstName,
		Message:     "Thank you for your order! We will let you know once it ships.",
		OrderNumber: fmt.Sprintf("#%d", order.ID),
		OrderTotal:  pricing.FormatAmount(order.Total),
	}
	templatePath := filepath.Join("templates", "order_confirmation.html")
	return utils.SendEmail(order.Email, "Order Confirmation", emailData, templatePath)
}

// Checkout turns the caller's cart into an immutable order. The total is
// computed by the same engine the cart and builder display, never trusted
// from the client. Order creation, promo usage consumption and cart
// clearing commit in one transaction.
func Checkout(ctx *gin.Context) {
	var orderInfo struct {
		FirstName        string `json:"firstName" binding:"required"`
		LastName         string `json:"lastName" binding:"required"`
		Email            string `json:"email" binding:"required,email"`
		Phone            string `json:"phone" binding:"required"`
		DeliveryLocation string `json:"deliveryLocation" binding:"required"`
		PromoCode        string `json:"promoCode"`
	}
	if err := ctx.ShouldBindJSON(&orderInfo); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	userCart, found, err := resolveCart(ctx, false)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch cart", err)
		return
	}
	if !found || len(userCart.Items) == 0 {
		sendErrorResponse(ctx, http.StatusUnprocessableEntity, "Cart is empty")
		return
	}

	lines, err := cartLines(userCart.Items)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to load cart products", err)
		return
	}

	rules, err := activeDiscountRules()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to load discount rules", err)
		return
	}

	// An explicitly supplied code that fails validation is rejected so the
	// shopper can correct or drop it; checkout without a code is never
	// blocked by promo state.
	var promoDiscount *pricing.Discount
	var promoRecord *models.PromoCode
	if orderInfo.PromoCode != "" {
		promoRecord, err = findPromoByCode(orderInfo.PromoCode)
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to validate promo code", err)
			return
		}
		discount, err := pricing.ValidatePromo(promoRecord, time.Now())
		if err != nil {
			sendJSONResponse(ctx, http.StatusUnprocessableEntity, gin.H{
				"message":    "Promo code could not be applied",
				"promoError": promoErrorKind(err),
			})
			return
		}
		promoDiscount = &discount
	}

	result := pricing.ComputeTotal(lines, rules, promoDiscount)

	order := models.Order{
		UserID:           userCart.UserID,
		FirstName:        orderInfo.FirstName,
		LastName:         orderInfo.LastName,
		Email:            orderInfo.Email,
		Phone:            orderInfo.Phone,
		DeliveryLocation: orderInfo.DeliveryLocation,
		Subtotal:         pricing.Round2(result.Subtotal),
		Discount:         pricing.Round2(result.Discount),
		DiscountSource:   result.Source,
		PromoCode:        result.Code,
		Total:            pricing.Round2(result.Total),
		Status:           "Pending",
		PaymentStatus:    "PENDING",
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create order", err)
		return
	}

	for _, item := range userCart.Items {
		orderItem := models.OrderItem{
			OrderID:   int(order.ID),
			ProductID: item.ProductID,
			Name:      item.ProductName,
			Variant:   item.Variant,
			Price:     item.Price,
			Quantity:  item.Quantity,
			BundleID:  item.BundleID,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			respondWithError(ctx, http.StatusInternalServerError, "Failed to create order items", err)
			return
		}
	}

	// Consume promo usage in the same transaction as the order. The guard
	// in the WHERE clause makes over-redemption impossible under
	// concurrent checkouts: the losing request sees zero rows updated.
	if promoRecord != nil {
		update := tx.Model(&models.PromoCode{}).
			Where("id = ? AND (max_uses IS NULL OR used_count < max_uses)", promoRecord.ID).
			Update("used_count", gorm.Expr("used_count + 1"))
		if update.Error != nil {
			tx.Rollback()
			respondWithError(ctx, http.StatusInternalServerError, "Failed to redeem promo code", update.Error)
			return
		}
		if update.RowsAffected == 0 {
			tx.Rollback()
			sendJSONResponse(ctx, http.StatusUnprocessableEntity, gin.H{
				"message":    "Promo code could not be applied",
				"promoError": "PromoUsageExceeded",
			})
			return
		}
	}

	// Cart clears on successful checkout.
	if err := tx.Where("cart_id = ?", userCart.ID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		respondWithError(ctx, http.StatusInternalServerError, "Failed to clear cart", err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save order", err)
		return
	}

	response := gin.H{
		"message": "Order created successfully.",
		"orderId": order.ID,
		"pricing": result,
	}

	if os.Getenv("PAYMENT_AUTH_URL") != "" {
		redirectURL, trackingID, err := submitPaymentOrder(order)
		if err != nil {
			log.Printf("Payment submit failed for order %d: %v", order.ID, err)
		} else {
			if err := initializers.DB.Model(&order).Updates(map[string]any{
				"payment_tracking_id": trackingID,
				"payment_status":      "PENDING",
			}).Error; err != nil {
				log.Printf("Order %d created, but tracking ID not saved: %s", order.ID, trackingID)
			}
			response["redirectUrl"] = redirectURL
			response["orderTrackingId"] = trackingID
		}
	}

	if err := sendOrderConfirmationEmail(order); err != nil {
		log.Println("Error sending order confirmation email:", err)
	}

	sendJSONResponse(ctx, http.StatusOK, response)
}

func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("OrderItems")

	if search := ctx.Query("search"); search != "" {
		query = query.Where("id LIKE ?", "%"+search+"%")
	}

	result := query.Order("created_at " + sortOrder).Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("id LIKE ?", "%"+search+"%")
	}
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func GetOrdersByCustomerId(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var orders []models.Order
	query := initializers.DB.Preload("OrderItems").Where("user_id = ?", userId)
	if result := query.Order("created_at " + sortOrder).Find(&orders); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func GetOrderById(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if result := initializers.DB.Preload("OrderItems").First(&order, orderId); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusNotFound, "Failed to fetch order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	if result := initializers.DB.Model(&models.Order{}).Where("id = ?", orderId).Update("status", orderStatusData.Status); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully."})
}

func DeleteOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	if result := initializers.DB.Delete(&models.Order{}, orderId); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}

func GetUndeliveredOrders(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.Order{}).
		Where("status != ?", "Completed").
		Count(&count)

	if result.Error != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count undelivered orders"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"undeliveredOrderCount": count})
}
