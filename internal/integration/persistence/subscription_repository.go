package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
	"github.com/cashgps/backend/internal/integration/persistence/model"
)

// subscriptionRepository implements the adapter.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance.
func NewSubscriptionRepository(db *gorm.DB) adapter.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Create inserts a subscription record.
func (r *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionModel := model.SubscriptionFromEntity(subscription)
	return r.db.WithContext(ctx).Create(subscriptionModel).Error
}

// FindByProviderSubscription retrieves a record by its provider reference.
func (r *subscriptionRepository) FindByProviderSubscription(ctx context.Context, providerSubscription string) (*entity.Subscription, error) {
	var subscriptionModel model.SubscriptionModel
	result := r.db.WithContext(ctx).
		Where("provider_subscription = ?", providerSubscription).
		First(&subscriptionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSubscriptionNotFound
		}
		return nil, result.Error
	}
	return subscriptionModel.ToEntity(), nil
}

// FindProviderSubscriptionByCustomer returns the provider reference of the
// customer's latest subscription record.
func (r *subscriptionRepository) FindProviderSubscriptionByCustomer(ctx context.Context, customerID string) (string, error) {
	var subscriptionModel model.SubscriptionModel
	result := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		First(&subscriptionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", domainerror.ErrSubscriptionNotFound
		}
		return "", result.Error
	}
	return subscriptionModel.ProviderSubscription, nil
}

// UpdateStatus sets the status of the record matching the provider reference.
func (r *subscriptionRepository) UpdateStatus(ctx context.Context, providerSubscription string, status entity.SubscriptionStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("provider_subscription = ?", providerSubscription).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSubscriptionNotFound
	}
	return nil
}
