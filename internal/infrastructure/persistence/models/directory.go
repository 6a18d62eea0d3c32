package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/localhub/backend/internal/domain/directory"
)

// ListingModel is the persistence model for business listings.
// owner_id is nullable: an unlinked listing keeps its row and public
// references but carries no owner until reclaimed.
type ListingModel struct {
	AggregateModel
	OwnerID      *uuid.UUID `gorm:"type:uuid;index"`
	Unlinked     bool       `gorm:"not null;default:false;index"`
	ContactEmail string     `gorm:"type:varchar(200);not null;index"`
	Name         string     `gorm:"type:varchar(200);not null"`
	Category     string     `gorm:"type:varchar(100);index"`
	Address      string     `gorm:"type:varchar(500)"`
	Phone        string     `gorm:"type:varchar(50)"`
	Website      string     `gorm:"type:varchar(500)"`
	Description  string     `gorm:"type:text"`
	Status       string     `gorm:"type:varchar(20);not null;index"`
}

// TableName specifies the table name
func (ListingModel) TableName() string {
	return "listings"
}

// ToDomain converts the persistence model to a domain listing
func (m *ListingModel) ToDomain() *directory.Listing {
	listing := &directory.Listing{
		OwnerID:      m.OwnerID,
		Unlinked:     m.Unlinked,
		ContactEmail: m.ContactEmail,
		Name:         m.Name,
		Category:     m.Category,
		Address:      m.Address,
		Phone:        m.Phone,
		Website:      m.Website,
		Description:  m.Description,
		Status:       directory.ListingStatus(m.Status),
	}
	m.PopulateAggregateRoot(&listing.BaseAggregateRoot)
	return listing
}

// ListingModelFromDomain converts a domain listing to the persistence model
func ListingModelFromDomain(l *directory.Listing) *ListingModel {
	model := &ListingModel{
		OwnerID:      l.OwnerID,
		Unlinked:     l.Unlinked,
		ContactEmail: l.ContactEmail,
		Name:         l.Name,
		Category:     l.Category,
		Address:      l.Address,
		Phone:        l.Phone,
		Website:      l.Website,
		Description:  l.Description,
		Status:       string(l.Status),
	}
	model.FromDomainAggregateRoot(l.BaseAggregateRoot)
	return model
}

// BookingModel is the persistence model for bookings. Rows are keyed by
// the booker's email, not a profile id.
type BookingModel struct {
	BaseModel
	Email     string          `gorm:"type:varchar(200);not null;index"`
	ListingID uuid.UUID       `gorm:"type:uuid;not null;index"`
	StartsAt  time.Time       `gorm:"not null"`
	EndsAt    time.Time       `gorm:"not null"`
	PartySize int             `gorm:"not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status    string          `gorm:"type:varchar(20);not null"`
}

// TableName specifies the table name
func (BookingModel) TableName() string {
	return "bookings"
}

// ToDomain converts the persistence model to a domain booking
func (m *BookingModel) ToDomain() *directory.Booking {
	return &directory.Booking{
		BaseEntity: m.BaseModel.ToDomain(),
		Email:      m.Email,
		ListingID:  m.ListingID,
		StartsAt:   m.StartsAt,
		EndsAt:     m.EndsAt,
		PartySize:  m.PartySize,
		Amount:     m.Amount,
		Status:     directory.BookingStatus(m.Status),
	}
}

// BookingModelFromDomain converts a domain booking to the persistence model
func BookingModelFromDomain(b *directory.Booking) *BookingModel {
	model := &BookingModel{
		Email:     b.Email,
		ListingID: b.ListingID,
		StartsAt:  b.StartsAt,
		EndsAt:    b.EndsAt,
		PartySize: b.PartySize,
		Amount:    b.Amount,
		Status:    string(b.Status),
	}
	model.FromDomainBaseEntity(b.BaseEntity)
	return model
}

// InquiryModel is the persistence model for contact-form inquiries
type InquiryModel struct {
	BaseModel
	Email     string     `gorm:"type:varchar(200);not null;index"`
	ListingID *uuid.UUID `gorm:"type:uuid;index"`
	Subject   string     `gorm:"type:varchar(200)"`
	Message   string     `gorm:"type:text;not null"`
}

// TableName specifies the table name
func (InquiryModel) TableName() string {
	return "inquiries"
}

// ToDomain converts the persistence model to a domain inquiry
func (m *InquiryModel) ToDomain() *directory.Inquiry {
	return &directory.Inquiry{
		BaseEntity: m.BaseModel.ToDomain(),
		Email:      m.Email,
		ListingID:  m.ListingID,
		Subject:    m.Subject,
		Message:    m.Message,
	}
}

// InquiryModelFromDomain converts a domain inquiry to the persistence model
func InquiryModelFromDomain(i *directory.Inquiry) *InquiryModel {
	model := &InquiryModel{
		Email:     i.Email,
		ListingID: i.ListingID,
		Subject:   i.Subject,
		Message:   i.Message,
	}
	model.FromDomainBaseEntity(i.BaseEntity)
	return model
}

// SavedListingModel is the persistence model for bookmarks
type SavedListingModel struct {
	BaseModel
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index:idx_saved_listings_profile_listing,unique"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;index:idx_saved_listings_profile_listing,unique"`
}

// TableName specifies the table name
func (SavedListingModel) TableName() string {
	return "saved_listings"
}

// ToDomain converts the persistence model to a domain saved listing
func (m *SavedListingModel) ToDomain() *directory.SavedListing {
	return &directory.SavedListing{
		BaseEntity: m.BaseModel.ToDomain(),
		ProfileID:  m.ProfileID,
		ListingID:  m.ListingID,
	}
}

// SavedListingModelFromDomain converts a domain saved listing to the persistence model
func SavedListingModelFromDomain(s *directory.SavedListing) *SavedListingModel {
	model := &SavedListingModel{
		ProfileID: s.ProfileID,
		ListingID: s.ListingID,
	}
	model.FromDomainBaseEntity(s.BaseEntity)
	return model
}

// ReviewModel is the persistence model for listing reviews
type ReviewModel struct {
	BaseModel
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
}

// TableName specifies the table name
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts the persistence model to a domain review
func (m *ReviewModel) ToDomain() *directory.Review {
	return &directory.Review{
		BaseEntity: m.BaseModel.ToDomain(),
		ProfileID:  m.ProfileID,
		ListingID:  m.ListingID,
		Rating:     m.Rating,
		Comment:    m.Comment,
	}
}

// ReviewModelFromDomain converts a domain review to the persistence model
func ReviewModelFromDomain(r *directory.Review) *ReviewModel {
	model := &ReviewModel{
		ProfileID: r.ProfileID,
		ListingID: r.ListingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
	model.FromDomainBaseEntity(r.BaseEntity)
	return model
}

// ListingFlagModel is the persistence model for listing flags
type ListingFlagModel struct {
	BaseModel
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;index"`
	Reason    string    `gorm:"type:varchar(500);not null"`
}

// TableName specifies the table name
func (ListingFlagModel) TableName() string {
	return "listing_flags"
}

// ToDomain converts the persistence model to a domain listing flag
func (m *ListingFlagModel) ToDomain() *directory.ListingFlag {
	return &directory.ListingFlag{
		BaseEntity: m.BaseModel.ToDomain(),
		ProfileID:  m.ProfileID,
		ListingID:  m.ListingID,
		Reason:     m.Reason,
	}
}

// ListingFlagModelFromDomain converts a domain listing flag to the persistence model
func ListingFlagModelFromDomain(f *directory.ListingFlag) *ListingFlagModel {
	model := &ListingFlagModel{
		ProfileID: f.ProfileID,
		ListingID: f.ListingID,
		Reason:    f.Reason,
	}
	model.FromDomainBaseEntity(f.BaseEntity)
	return model
}
