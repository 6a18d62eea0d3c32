package dto

import (
	"net/http"
	"strings"
)

// Common error codes surfaced by the API
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// GetHTTPStatus returns the HTTP status for a domain error code. Codes
// not listed explicitly are classified by shape: INVALID_* means the
// caller sent bad input, *_NOT_FOUND means a missing resource, *_EXISTS
// and *_TAKEN mean a uniqueness conflict. Everything else is a server
// error.
func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeValidation, ErrCodeBadRequest,
		"INVALID_INPUT", "INVALID_EMAIL", "INVALID_ROLE",
		"INVALID_IDENTITY", "INVALID_LISTING_ID":
		return http.StatusBadRequest

	case ErrCodeUnauthorized, "INVALID_CREDENTIALS",
		"TOKEN_EXPIRED", "TOKEN_INVALID", "TOKEN_REVOKED", "TOKEN_MAX_REFRESH":
		return http.StatusUnauthorized

	case ErrCodeForbidden:
		return http.StatusForbidden

	case ErrCodeNotFound, "ACCOUNT_NOT_FOUND", "PROFILE_NOT_FOUND", "LISTING_NOT_FOUND":
		return http.StatusNotFound

	case ErrCodeConflict, "EMAIL_TAKEN", "ALREADY_EXISTS", "CONCURRENCY_CONFLICT":
		return http.StatusConflict

	case "INVALID_STATE", "ALREADY_APPROVED",
		"LISTING_NOT_APPROVED", "LISTING_NOT_UNLINKED":
		return http.StatusUnprocessableEntity

	case ErrCodeInternal, "PERSISTENCE_ERROR", "PASSWORD_HASH_ERROR":
		return http.StatusInternalServerError
	}

	switch {
	case strings.HasPrefix(code, "INVALID_"):
		return http.StatusBadRequest
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "_EXISTS"), strings.HasSuffix(code, "_TAKEN"):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
