// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email                 string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash          string     `gorm:"type:varchar(255);not null"`
	FirstName             string     `gorm:"type:varchar(100);not null"`
	LastName              string     `gorm:"type:varchar(100);not null"`
	Timezone              string     `gorm:"type:varchar(64);not null;default:UTC"`
	Currency              string     `gorm:"type:varchar(3);not null;default:USD"`
	CustomerID            string     `gorm:"type:varchar(255);index"`
	ActiveSubscription    *string    `gorm:"type:varchar(20)"`
	SubscriptionExpiresAt *time.Time `gorm:"type:timestamp"`
	PasswordResetToken    *string    `gorm:"type:varchar(128);index"`
	PasswordResetExpires  *time.Time `gorm:"type:timestamp"`
	CreatedAt             time.Time  `gorm:"not null"`
	UpdatedAt             time.Time  `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:                    m.ID,
		Email:                 m.Email,
		PasswordHash:          m.PasswordHash,
		FirstName:             m.FirstName,
		LastName:              m.LastName,
		Timezone:              m.Timezone,
		Currency:              m.Currency,
		CustomerID:            m.CustomerID,
		ActiveSubscription:    m.ActiveSubscription,
		SubscriptionExpiresAt: m.SubscriptionExpiresAt,
		PasswordResetToken:    m.PasswordResetToken,
		PasswordResetExpires:  m.PasswordResetExpires,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:                    user.ID,
		Email:                 user.Email,
		PasswordHash:          user.PasswordHash,
		FirstName:             user.FirstName,
		LastName:              user.LastName,
		Timezone:              user.Timezone,
		Currency:              user.Currency,
		CustomerID:            user.CustomerID,
		ActiveSubscription:    user.ActiveSubscription,
		SubscriptionExpiresAt: user.SubscriptionExpiresAt,
		PasswordResetToken:    user.PasswordResetToken,
		PasswordResetExpires:  user.PasswordResetExpires,
		CreatedAt:             user.CreatedAt,
		UpdatedAt:             user.UpdatedAt,
	}
}
