package errors

import (
	"context"
	"errors"

	"github.com/louisbranch/assetregistry/internal/platform/errors/i18n"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultLocale is the default locale for error messages.
const DefaultLocale = i18n.BaseLocale

// HandleError converts domain errors to gRPC status for client responses.
// The user-facing message is rendered from the i18n catalog that best
// matches locale (an Accept-Language style value).
func HandleError(err error, locale string) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		catalog := i18n.GetCatalog(locale)
		userMsg := catalog.Format(string(appErr.Code), appErr.Metadata)
		return appErr.ToGRPCStatus(catalog.Locale(), userMsg)
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, "request canceled")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, "request deadline exceeded")
	}

	return status.Error(codes.Internal, "an unexpected error occurred")
}

// Localize renders the user-facing message for err in locale. Non-domain
// errors render as the generic internal message.
func Localize(err error, locale string) (Code, string, string) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return CodeUnknown, i18n.BaseLocale, "an unexpected error occurred"
	}
	catalog := i18n.GetCatalog(locale)
	return appErr.Code, catalog.Locale(), catalog.Format(string(appErr.Code), appErr.Metadata)
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a domain error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetMetadata extracts metadata from an error if present.
func GetMetadata(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Metadata
	}
	return nil
}

// CodeFromStatus recovers the domain code attached to a gRPC status error by
// HandleError. It returns CodeUnknown when no ErrorInfo detail is present.
func CodeFromStatus(err error) Code {
	st, ok := status.FromError(err)
	if !ok {
		return CodeUnknown
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return Code(info.GetReason())
		}
	}
	return CodeUnknown
}

// LocalizedMessageFromStatus returns the LocalizedMessage detail of a gRPC
// status error, falling back to the status message.
func LocalizedMessageFromStatus(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return err.Error()
	}
	for _, detail := range st.Details() {
		if msg, ok := detail.(*errdetails.LocalizedMessage); ok {
			return msg.GetMessage()
		}
	}
	return st.Message()
}
