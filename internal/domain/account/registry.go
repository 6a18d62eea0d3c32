package account

// RegistryKey describes how rows of a table reference an identity
type RegistryKey string

const (
	// KeyByID marks tables whose rows carry the profile's id
	KeyByID RegistryKey = "byId"
	// KeyByEmail marks tables whose rows carry only an email address and
	// exist whether or not a profile does
	KeyByEmail RegistryKey = "byEmail"
	// KeyByOwnerOrEmail marks tables whose rows carry both an owner link
	// and a contact email. Listings are matched by owner id for a full
	// identity and by contact email for a partial one.
	KeyByOwnerOrEmail RegistryKey = "byOwnerOrEmail"
)

// RegistryAction describes what deletion does to matching rows
type RegistryAction string

const (
	// ActionHardDelete permanently removes matching rows
	ActionHardDelete RegistryAction = "hardDelete"
	// ActionSoftDeleteOwnership clears the owner link and marks the row
	// unlinked, preserving it and any public references to it. Honored
	// unless the caller explicitly asks for a hard delete of owned rows.
	ActionSoftDeleteOwnership RegistryAction = "softDeleteOwnership"
)

// Registration is one entry of the deletion registry
type Registration struct {
	Table  string
	Key    RegistryKey
	Action RegistryAction
}

// AppliesToPartial reports whether the entry participates in deleting a
// partial identity (email-keyed data with no profile or auth record).
func (r Registration) AppliesToPartial() bool {
	return r.Key == KeyByEmail || r.Key == KeyByOwnerOrEmail
}

// DeletionRegistry is the exhaustive list of every table referencing an
// identity, in cascade order: dependent leaves first, then email-keyed
// domain rows, then listings, then the profile row, then the auth record
// last of all. Any new table referencing a profile id or user email MUST
// be registered here; the deletion orchestrator refuses to start without
// an executor for every entry.
func DeletionRegistry() []Registration {
	return []Registration{
		{Table: "saved_listings", Key: KeyByID, Action: ActionHardDelete},
		{Table: "reviews", Key: KeyByID, Action: ActionHardDelete},
		{Table: "listing_flags", Key: KeyByID, Action: ActionHardDelete},
		{Table: "notifications", Key: KeyByID, Action: ActionHardDelete},
		{Table: "preferences", Key: KeyByID, Action: ActionHardDelete},
		{Table: "bookings", Key: KeyByEmail, Action: ActionHardDelete},
		{Table: "inquiries", Key: KeyByEmail, Action: ActionHardDelete},
		{Table: "listings", Key: KeyByOwnerOrEmail, Action: ActionSoftDeleteOwnership},
		{Table: "profiles", Key: KeyByID, Action: ActionHardDelete},
		{Table: "credentials", Key: KeyByID, Action: ActionHardDelete},
	}
}

// RegistryTables returns the registered table names in cascade order
func RegistryTables() []string {
	registry := DeletionRegistry()
	tables := make([]string, len(registry))
	for i, reg := range registry {
		tables[i] = reg.Table
	}
	return tables
}
