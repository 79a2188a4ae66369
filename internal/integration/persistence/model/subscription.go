package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/domain/entity"
)

// SubscriptionModel represents the subscriptions table in the database.
type SubscriptionModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID           string    `gorm:"type:varchar(255);not null;index"`
	ProviderSubscription string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CheckoutSessionID    string    `gorm:"type:varchar(255)"`
	Description          string    `gorm:"type:varchar(255)"`
	Status               string    `gorm:"type:varchar(20);not null"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

// TableName returns the table name for the SubscriptionModel.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToEntity converts a SubscriptionModel to a domain Subscription entity.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		ID:                   m.ID,
		CustomerID:           m.CustomerID,
		ProviderSubscription: m.ProviderSubscription,
		CheckoutSessionID:    m.CheckoutSessionID,
		Description:          m.Description,
		Status:               entity.SubscriptionStatus(m.Status),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// SubscriptionFromEntity creates a SubscriptionModel from a domain Subscription entity.
func SubscriptionFromEntity(subscription *entity.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:                   subscription.ID,
		CustomerID:           subscription.CustomerID,
		ProviderSubscription: subscription.ProviderSubscription,
		CheckoutSessionID:    subscription.CheckoutSessionID,
		Description:          subscription.Description,
		Status:               string(subscription.Status),
		CreatedAt:            subscription.CreatedAt,
		UpdatedAt:            subscription.UpdatedAt,
	}
}
