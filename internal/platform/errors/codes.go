// Package errors provides structured registry errors with i18n support.
package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Asset input errors
	CodeAssetHashEmpty     Code = "ASSET_HASH_EMPTY"
	CodeAssetNewOwnerEmpty Code = "ASSET_NEW_OWNER_EMPTY"

	// Asset state errors
	CodeAssetAlreadyRegistered Code = "ASSET_ALREADY_REGISTERED"
	CodeAssetNotFound          Code = "ASSET_NOT_FOUND"
	CodeAssetNotOwner          Code = "ASSET_NOT_OWNER"
	CodeAssetIndexOutOfRange   Code = "ASSET_INDEX_OUT_OF_RANGE"

	// Caller errors
	CodeCallerMissing      Code = "CALLER_MISSING"
	CodeCallerTokenInvalid Code = "CALLER_TOKEN_INVALID"

	// Request errors
	CodePageTokenInvalid Code = "PAGE_TOKEN_INVALID"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeAssetHashEmpty,
		CodeAssetNewOwnerEmpty,
		CodePageTokenInvalid:
		return codes.InvalidArgument

	// AlreadyExists - duplicate registration
	case CodeAssetAlreadyRegistered:
		return codes.AlreadyExists

	// NotFound - asset was never registered
	case CodeAssetNotFound:
		return codes.NotFound

	// PermissionDenied - caller is not the current owner
	case CodeAssetNotOwner:
		return codes.PermissionDenied

	// OutOfRange - enumeration index beyond the count
	case CodeAssetIndexOutOfRange:
		return codes.OutOfRange

	// Unauthenticated - no usable caller identity
	case CodeCallerMissing,
		CodeCallerTokenInvalid:
		return codes.Unauthenticated

	default:
		return codes.Internal
	}
}

// HTTPStatus maps domain codes to HTTP status codes for the JSON gateway.
func (c Code) HTTPStatus() int {
	switch c.GRPCCode() {
	case codes.InvalidArgument, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.NotFound:
		return http.StatusNotFound
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
