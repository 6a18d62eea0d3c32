package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/infrastructure/persistence/models"
)

// SchemaVersion identifies the schema layout this build expects. Bump it
// together with a migration whenever a table or identity-bearing column
// changes shape.
const SchemaVersion = 1

// identityColumns maps each deletion-registry table to the columns the
// cascade matches rows on. Startup validation fails fast when the live
// schema drifts from what the registry executors assume, instead of
// failing halfway through a deletion.
var identityColumns = map[string][]string{
	"saved_listings": {"profile_id"},
	"reviews":        {"profile_id"},
	"listing_flags":  {"profile_id"},
	"notifications":  {"profile_id"},
	"preferences":    {"profile_id"},
	"bookings":       {"email"},
	"inquiries":      {"email"},
	"listings":       {"owner_id", "contact_email", "unlinked"},
	"profiles":       {"id", "email"},
	"credentials":    {"profile_id", "email"},
}

func tableModel(table string) any {
	switch table {
	case "saved_listings":
		return &models.SavedListingModel{}
	case "reviews":
		return &models.ReviewModel{}
	case "listing_flags":
		return &models.ListingFlagModel{}
	case "notifications":
		return &models.NotificationModel{}
	case "preferences":
		return &models.PreferenceModel{}
	case "bookings":
		return &models.BookingModel{}
	case "inquiries":
		return &models.InquiryModel{}
	case "listings":
		return &models.ListingModel{}
	case "profiles":
		return &models.ProfileModel{}
	case "credentials":
		return &models.CredentialModel{}
	}
	return nil
}

// ValidateSchema checks the live database against the deletion registry:
// every registered table must exist and carry the identity columns its
// cascade step matches on. Called at startup, after migrations have run.
func ValidateSchema(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, table := range account.RegistryTables() {
		model := tableModel(table)
		if model == nil {
			return fmt.Errorf("schema v%d: registry table %q has no persistence model", SchemaVersion, table)
		}
		if !migrator.HasTable(model) {
			return fmt.Errorf("schema v%d: registry table %q does not exist", SchemaVersion, table)
		}

		columns, ok := identityColumns[table]
		if !ok {
			return fmt.Errorf("schema v%d: registry table %q has no identity column descriptor", SchemaVersion, table)
		}
		for _, column := range columns {
			if !migrator.HasColumn(model, column) {
				return fmt.Errorf("schema v%d: table %q is missing identity column %q", SchemaVersion, table, column)
			}
		}
	}

	return nil
}

// AllModels returns every persistence model, used by tests to build an
// in-memory schema
func AllModels() []any {
	return []any{
		&models.ProfileModel{},
		&models.CredentialModel{},
		&models.NotificationModel{},
		&models.PreferenceModel{},
		&models.ListingModel{},
		&models.BookingModel{},
		&models.InquiryModel{},
		&models.SavedListingModel{},
		&models.ReviewModel{},
		&models.ListingFlagModel{},
	}
}
