package handlers

import (
	"net/http"

	"savayas/models"
	"savayas/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateOrderHandler handles POST /api/payments/order.
func (h *PaymentHandler) CreateOrderHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	order, err := h.PaymentService.CreateOrder(userID, req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// VerifyPaymentHandler handles POST /api/payments/verify.
func (h *PaymentHandler) VerifyPaymentHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	record, err := h.PaymentService.VerifyPayment(userID, req)
	if err != nil {
		utils.GetLogger().Warn("Payment verification failed",
			zap.String("orderID", req.OrderID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetPaymentHandler handles GET /api/payments/appointment/:appointmentId.
func (h *PaymentHandler) GetPaymentHandler(c *gin.Context) {
	p, err := h.PaymentService.GetByAppointment(c.Param("appointmentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListMyPaymentsHandler handles GET /api/payments.
func (h *PaymentHandler) ListMyPaymentsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	payments, err := h.PaymentService.ListForUser(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list payments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GetAllPaymentsHandler handles GET /api/admin/payments.
func (h *PaymentHandler) GetAllPaymentsHandler(c *gin.Context) {
	payments, err := h.PaymentService.ListAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list payments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}
