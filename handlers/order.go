package handlers

import (
	"net/http"
	"strconv"

	"github.com/jsersan/tatooback/middleware"
	"github.com/jsersan/tatooback/services"
	"github.com/jsersan/tatooback/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler parses order requests, enforces ownership, and delegates the
// transactional work to the order service.
type OrderHandler struct {
	Orders *services.OrderService
}

type createOrderRequest struct {
	UserID uint                      `json:"user_id" binding:"required"`
	Date   string                    `json:"date"`
	Total  float64                   `json:"total" binding:"gte=0"`
	Lines  []services.OrderLineInput `json:"lines"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	callerID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if callerID != req.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to create orders for another user"})
		return
	}

	order, err := h.Orders.Create(services.OrderInput{
		UserID: req.UserID,
		Date:   req.Date,
		Total:  req.Total,
		Lines:  req.Lines,
	})
	if err != nil {
		c.JSON(serviceStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.Orders.Get(uint(id))
	if err != nil {
		c.JSON(serviceStatus(err), gin.H{"error": err.Error()})
		return
	}

	callerID, _ := c.Get("user_id")
	if callerID != order.UserID && !middleware.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetOrdersByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	callerID, _ := c.Get("user_id")
	if callerID != uint(userID) && !middleware.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view these orders"})
		return
	}

	orders, err := h.Orders.ListByUser(uint(userID))
	if err != nil {
		c.JSON(serviceStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}
