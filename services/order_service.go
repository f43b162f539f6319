package services

import (
	"errors"
	"time"

	"github.com/jsersan/tatooback/models"

	"gorm.io/gorm"
)

// OrderService creates orders together with their lines as one atomic unit
// and assembles full order views for reads. Ownership checks belong to the
// caller; the service assumes the request is already authorized.
type OrderService struct {
	DB *gorm.DB
}

// OrderLineInput is one product/color/quantity entry of a new order.
type OrderLineInput struct {
	ProductID uint   `json:"product_id"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
}

// OrderInput is the payload for creating an order.
type OrderInput struct {
	UserID uint             `json:"user_id"`
	Date   string           `json:"date"`
	Total  float64          `json:"total"`
	Lines  []OrderLineInput `json:"lines"`
}

func (in *OrderInput) validate() error {
	if len(in.Lines) == 0 {
		return invalid("order must contain at least one line")
	}
	if in.Total < 0 {
		return invalid("order total must not be negative")
	}
	if in.Date != "" {
		if _, err := time.Parse(models.DateLayout, in.Date); err != nil {
			return invalid("order date must use the %s format", models.DateLayout)
		}
	}
	for i, line := range in.Lines {
		if line.ProductID == 0 {
			return invalid("line %d: product_id is required", i+1)
		}
		if line.Color == "" {
			return invalid("line %d: color is required", i+1)
		}
		if line.Quantity < 1 {
			return invalid("line %d: quantity must be at least 1", i+1)
		}
	}
	return nil
}

// Create persists an order and all its lines inside a single transaction.
// Either every row lands or none does; a failure partway rolls the whole
// operation back. The date defaults to today when omitted.
func (s *OrderService) Create(input OrderInput) (*models.Order, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	order := models.Order{
		UserID: input.UserID,
		Date:   date,
		Total:  input.Total,
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, storage(tx.Error)
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, storage(err)
	}

	lines := make([]models.OrderLine, len(input.Lines))
	for i, in := range input.Lines {
		lines[i] = models.OrderLine{
			OrderID:   order.ID,
			ProductID: in.ProductID,
			Color:     in.Color,
			Quantity:  in.Quantity,
			Name:      in.Name,
		}
	}

	if err := tx.Create(&lines).Error; err != nil {
		tx.Rollback()
		return nil, storage(err)
	}

	var created models.Order
	if err := tx.Preload("Lines").First(&created, order.ID).Error; err != nil {
		tx.Rollback()
		return nil, storage(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, storage(err)
	}

	return &created, nil
}

// Get returns an order with its lines, each line's product summary and the
// owning user.
func (s *OrderService) Get(id uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Lines").Preload("Lines.Product").Preload("User").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("order %d not found", id)
		}
		return nil, storage(err)
	}
	return &order, nil
}

// ListByUser returns all orders of a user with their lines, most recent
// date first.
func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	if err := s.DB.First(&models.User{}, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user %d not found", userID)
		}
		return nil, storage(err)
	}

	var orders []models.Order
	if err := s.DB.Preload("Lines").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&orders).Error; err != nil {
		return nil, storage(err)
	}
	return orders, nil
}
