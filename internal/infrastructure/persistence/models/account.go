package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/localhub/backend/internal/domain/account"
)

// ProfileModel is the persistence model for member profiles
type ProfileModel struct {
	AggregateModel
	Email       string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Name        string `gorm:"type:varchar(200)"`
	Role        string `gorm:"type:varchar(20);index"`
	Phone       string `gorm:"type:varchar(50)"`
	Avatar      string `gorm:"type:varchar(500)"`
	Bio         string `gorm:"type:text"`
	NotifyOptIn bool   `gorm:"not null;default:false"`
}

// TableName specifies the table name
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain converts the persistence model to a domain profile
func (m *ProfileModel) ToDomain() *account.Profile {
	profile := &account.Profile{
		Email:       m.Email,
		Name:        m.Name,
		Role:        account.AccountRole(m.Role),
		Phone:       m.Phone,
		Avatar:      m.Avatar,
		Bio:         m.Bio,
		NotifyOptIn: m.NotifyOptIn,
	}
	m.PopulateAggregateRoot(&profile.BaseAggregateRoot)
	return profile
}

// ProfileModelFromDomain converts a domain profile to the persistence model
func ProfileModelFromDomain(p *account.Profile) *ProfileModel {
	model := &ProfileModel{
		Email:       p.Email,
		Name:        p.Name,
		Role:        string(p.Role),
		Phone:       p.Phone,
		Avatar:      p.Avatar,
		Bio:         p.Bio,
		NotifyOptIn: p.NotifyOptIn,
	}
	model.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return model
}

// CredentialModel is the persistence model for auth records
type CredentialModel struct {
	BaseModel
	ProfileID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Email        string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(100);not null"`
	LastLoginAt  *time.Time `gorm:""`
}

// TableName specifies the table name
func (CredentialModel) TableName() string {
	return "credentials"
}

// ToDomain converts the persistence model to a domain credential
func (m *CredentialModel) ToDomain() *account.Credential {
	return &account.Credential{
		BaseEntity:   m.BaseModel.ToDomain(),
		ProfileID:    m.ProfileID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		LastLoginAt:  m.LastLoginAt,
	}
}

// CredentialModelFromDomain converts a domain credential to the persistence model
func CredentialModelFromDomain(c *account.Credential) *CredentialModel {
	model := &CredentialModel{
		ProfileID:    c.ProfileID,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		LastLoginAt:  c.LastLoginAt,
	}
	model.FromDomainBaseEntity(c.BaseEntity)
	return model
}

// NotificationModel is the persistence model for in-app notifications
type NotificationModel struct {
	BaseModel
	ProfileID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind      string     `gorm:"type:varchar(50);not null"`
	Payload   string     `gorm:"type:text"`
	ReadAt    *time.Time `gorm:""`
}

// TableName specifies the table name
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a domain notification
func (m *NotificationModel) ToDomain() *account.Notification {
	return &account.Notification{
		BaseEntity: m.BaseModel.ToDomain(),
		ProfileID:  m.ProfileID,
		Kind:       m.Kind,
		Payload:    m.Payload,
		ReadAt:     m.ReadAt,
	}
}

// NotificationModelFromDomain converts a domain notification to the persistence model
func NotificationModelFromDomain(n *account.Notification) *NotificationModel {
	model := &NotificationModel{
		ProfileID: n.ProfileID,
		Kind:      n.Kind,
		Payload:   n.Payload,
		ReadAt:    n.ReadAt,
	}
	model.FromDomainBaseEntity(n.BaseEntity)
	return model
}

// PreferenceModel is the persistence model for per-profile settings
type PreferenceModel struct {
	BaseModel
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index:idx_preferences_profile_key,unique"`
	Key       string    `gorm:"type:varchar(100);not null;index:idx_preferences_profile_key,unique"`
	Value     string    `gorm:"type:text"`
}

// TableName specifies the table name
func (PreferenceModel) TableName() string {
	return "preferences"
}

// ToDomain converts the persistence model to a domain preference
func (m *PreferenceModel) ToDomain() *account.Preference {
	return &account.Preference{
		BaseEntity: m.BaseModel.ToDomain(),
		ProfileID:  m.ProfileID,
		Key:        m.Key,
		Value:      m.Value,
	}
}

// PreferenceModelFromDomain converts a domain preference to the persistence model
func PreferenceModelFromDomain(p *account.Preference) *PreferenceModel {
	model := &PreferenceModel{
		ProfileID: p.ProfileID,
		Key:       p.Key,
		Value:     p.Value,
	}
	model.FromDomainBaseEntity(p.BaseEntity)
	return model
}
