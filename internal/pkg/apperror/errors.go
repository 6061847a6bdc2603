// Package apperror is the error taxonomy shared by services and the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound       Kind = "not_found"
	KindInvalidInput   Kind = "invalid_input"
	KindConflict       Kind = "conflict"
	KindUnauthorized   Kind = "unauthorized"
	KindForbidden      Kind = "forbidden"
	KindQuotaExhausted Kind = "quota_exhausted"
	KindNoSubscription Kind = "no_subscription"
	KindInternal       Kind = "internal"
)

// AppError carries a Kind so the HTTP layer can pick a status code.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError of the same Kind, so sentinels compare by kind
// and callers can write errors.Is(err, apperror.ErrQuotaExhausted).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Message == "" || t.Message == e.Message)
}

func New(kind Kind, msg string) *AppError {
	return &AppError{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) *AppError {
	return &AppError{Kind: kind, Message: msg, Err: err}
}

func NotFound(msg string) *AppError       { return New(KindNotFound, msg) }
func InvalidInput(msg string) *AppError   { return New(KindInvalidInput, msg) }
func Conflict(msg string) *AppError       { return New(KindConflict, msg) }
func Unauthorized(msg string) *AppError   { return New(KindUnauthorized, msg) }
func Forbidden(msg string) *AppError      { return New(KindForbidden, msg) }
func QuotaExhausted(msg string) *AppError { return New(KindQuotaExhausted, msg) }

func Internal(msg string, err error) *AppError {
	return Wrap(KindInternal, msg, err)
}

var (
	ErrPlanNotFound         = NotFound("plan not found")
	ErrSubscriptionNotFound = NotFound("subscription not found")
	ErrBookingNotFound      = NotFound("booking not found")
	ErrServiceNotFound      = NotFound("service not found")
	ErrUserNotFound         = NotFound("user not found")
	ErrNoActiveSubscription = New(KindNoSubscription, "no active subscription found")
	ErrQuotaExhausted       = QuotaExhausted("booking limit reached, please renew or upgrade your subscription")
	ErrOpenSubscription     = Conflict("vendor already has a pending or active subscription")
	ErrNotSubscriptionOwner = Unauthorized("subscription does not belong to this vendor")
	ErrNotBookingVendor     = Forbidden("booking is not assigned to this vendor")
)

// KindOf returns the Kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
