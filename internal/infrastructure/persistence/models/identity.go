package models

import (
	"time"

	"github.com/shopcore/backend/internal/domain/identity"
)

// UserModel is the persistence model for identity.User
type UserModel struct {
	BaseModel
	Email          string        `gorm:"type:varchar(320);not null;uniqueIndex"`
	PasswordHash   string        `gorm:"type:varchar(255);not null"`
	FirstName      string        `gorm:"type:varchar(100)"`
	LastName       string        `gorm:"type:varchar(100)"`
	Role           identity.Role `gorm:"type:varchar(20);not null;default:'CUSTOMER'"`
	SessionVersion int           `gorm:"not null;default:0"`
	LastLogoutAt   *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain user
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.BaseModel.ToDomain(),
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Role:              m.Role,
		SessionVersion:    m.SessionVersion,
		LastLogoutAt:      m.LastLogoutAt,
	}
}

// UserModelFromDomain converts a domain user to its model
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           u.Role,
		SessionVersion: u.SessionVersion,
		LastLogoutAt:   u.LastLogoutAt,
	}
	m.BaseModel.FromDomain(u.BaseAggregateRoot)
	return m
}
