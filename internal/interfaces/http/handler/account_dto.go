package handler

// UpdateProfileRequest is the request body for a partial profile update.
// Pointer fields distinguish "absent" from "set to zero value": absent
// fields never clear stored values.
type UpdateProfileRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Role        *string `json:"role" binding:"omitempty,oneof=community business admin"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
	Avatar      *string `json:"avatar" binding:"omitempty,url"`
	Bio         *string `json:"bio" binding:"omitempty,max=2000"`
	NotifyOptIn *bool   `json:"notify_opt_in"`
}

// UpdateProfileResponse is the response body for a profile update
type UpdateProfileResponse struct {
	Profile ProfileResponse `json:"profile"`
	Created bool            `json:"created"`
	// SkippedFields lists immutable fields excluded from the write
	// because the stored profile already had a value for them
	SkippedFields []string `json:"skipped_fields,omitempty"`
}

// DeleteAccountResponse wraps the per-table deletion report
type DeleteAccountResponse struct {
	Identity      string           `json:"identity"`
	Kind          string           `json:"kind"`
	RemovedCounts map[string]int64 `json:"removed_counts"`
	Listings      struct {
		HardDeleted int `json:"hard_deleted"`
		SoftDeleted int `json:"soft_deleted"`
	} `json:"listings"`
	Failures []DeletionFailure `json:"failures,omitempty"`
	Complete bool              `json:"complete"`
}

// DeletionFailure reports a cascade step that failed
type DeletionFailure struct {
	Table  string `json:"table"`
	Reason string `json:"reason"`
}

// ResolveIdentityResponse is the response body for identity resolution
type ResolveIdentityResponse struct {
	Identity  string           `json:"identity"`
	Kind      string           `json:"kind"`
	Email     string           `json:"email,omitempty"`
	ProfileID string           `json:"profile_id,omitempty"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
}
