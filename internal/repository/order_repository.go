package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return translate(r.db.WithContext(ctx).Create(order).Error)
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *OrderRepository) GetBySessionID(ctx context.Context, sessionID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Where("session_stripe_id = ?", sessionID).First(&order).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *OrderRepository) CountByEventID(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}

// SumTicketsByEventID is the number of tickets still held for an event.
// Orders whose checkout session expired no longer hold seats.
func (r *OrderRepository) SumTicketsByEventID(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("event_id = ?", eventID).
		Where("(status_stripe_id IS NULL OR status_stripe_id <> ?)", models.CheckoutStatusExpired).
		Select("COALESCE(SUM(tickets), 0)").
		Scan(&total).Error
	return total, err
}

func (r *OrderRepository) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}
