package errors

import (
	"net/http"

	"zakaz/internal/errors"
)

// Kind classifies an application error so callers can branch without parsing messages.
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindInvalidState        Kind = "invalid_state"
	KindPermissionDenied    Kind = "permission_denied"
	KindValidation          Kind = "validation_error"
	KindConstraintViolation Kind = "constraint_violation"
	KindInternal            Kind = "internal"
)

// HTTPCode returns the default HTTP status for the kind.
func (k Kind) HTTPCode() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidState, KindConstraintViolation:
		return http.StatusConflict
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so errors derived
// through WithDetails still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Kind()
	}

	return KindInternal
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		"USER_NOT_FOUND",
		"Foydalanuvchi topilmadi",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		KindConstraintViolation,
		"USER_ALREADY_EXISTS",
		"Bu email, telefon yoki foydalanuvchi nomi allaqachon ro'yxatdan o'tgan",
		"",
	)

	ErrCustomerInvalid = NewBaseError(
		KindNotFound,
		"CUSTOMER_INVALID",
		"Mijoz topilmadi yoki faol emas",
		"",
	)

	ErrCourierInvalid = NewBaseError(
		KindNotFound,
		"COURIER_INVALID",
		"Kuryer topilmadi yoki faol emas",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		"PASSWORD_HASH_FAILED",
		"Parolni qayta ishlashda xatolik",
		"",
	)

	// Shop-related errors
	ErrShopNotFound = NewBaseError(
		KindNotFound,
		"SHOP_NOT_FOUND",
		"Do'kon topilmadi",
		"",
	)

	ErrShopInvalid = NewBaseError(
		KindNotFound,
		"SHOP_INVALID",
		"Do'kon topilmadi yoki faol emas",
		"",
	)

	ErrShopAlreadyExists = NewBaseError(
		KindConstraintViolation,
		"SHOP_ALREADY_EXISTS",
		"Sizda allaqachon do'kon mavjud",
		"",
	)

	// Catalog errors
	ErrProductNotFound = NewBaseError(
		KindNotFound,
		"PRODUCT_NOT_FOUND",
		"Mahsulot topilmadi",
		"",
	)

	ErrProductUnavailable = NewBaseError(
		KindNotFound,
		"PRODUCT_UNAVAILABLE",
		"Mahsulot topilmadi yoki mavjud emas",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		KindNotFound,
		"CATEGORY_NOT_FOUND",
		"Kategoriya topilmadi",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		KindInvalidState,
		"INSUFFICIENT_STOCK",
		"Mahsulot yetarli emas",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		KindNotFound,
		"ORDER_NOT_FOUND",
		"Buyurtma topilmadi",
		"",
	)

	ErrOrderTerminal = NewBaseError(
		KindInvalidState,
		"ORDER_TERMINAL",
		"Yakunlangan buyurtma holatini o'zgartirib bo'lmaydi",
		"",
	)

	ErrInvalidStatusForRole = NewBaseError(
		KindPermissionDenied,
		"INVALID_STATUS_FOR_ROLE",
		"Sizning rolingiz uchun bu holat ruxsat etilmagan",
		"",
	)

	ErrBackwardMoveForbidden = NewBaseError(
		KindPermissionDenied,
		"BACKWARD_MOVE_FORBIDDEN",
		"Buyurtma holatini orqaga qaytarib bo'lmaydi",
		"",
	)

	ErrNotReadyForPickup = NewBaseError(
		KindInvalidState,
		"NOT_READY_FOR_PICKUP",
		"Buyurtma hali olib ketishga tayyor emas",
		"",
	)

	ErrAlreadyAccepted = NewBaseError(
		KindInvalidState,
		"ALREADY_ACCEPTED",
		"Buyurtma allaqachon boshqa kuryer tomonidan qabul qilingan",
		"",
	)

	// Rating-related errors
	ErrTargetNotFound = NewBaseError(
		KindNotFound,
		"TARGET_NOT_FOUND",
		"Baholanayotgan obyekt topilmadi",
		"",
	)

	ErrNoInteraction = NewBaseError(
		KindInvalidState,
		"NO_INTERACTION",
		"Faqat yetkazib berilgan buyurtmalar bo'yicha baho qo'yish mumkin",
		"",
	)

	ErrDuplicateRating = NewBaseError(
		KindInvalidState,
		"DUPLICATE_RATING",
		"Siz allaqachon baho qo'ygansiz",
		"",
	)

	// Notification and courier errors
	ErrNotificationNotFound = NewBaseError(
		KindNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Bildirishnoma topilmadi",
		"",
	)

	ErrCourierLocationNotFound = NewBaseError(
		KindNotFound,
		"COURIER_LOCATION_NOT_FOUND",
		"Kuryer joylashuvi topilmadi",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"Kiritilgan ma'lumotlar noto'g'ri",
		"",
	)

	ErrInvalidPhone = NewBaseError(
		KindValidation,
		"INVALID_PHONE",
		"Noto'g'ri telefon raqami formati",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		KindInternal,
		"TRANSACTION_FAILED",
		"Ma'lumotlar bazasi tranzaksiyasi bajarilmadi",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"Tizimda ichki xatolik",
		"",
	)

	ErrForbidden = NewBaseError(
		KindPermissionDenied,
		"FORBIDDEN",
		"Ruxsat berilmagan",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Ma'lumotlar bazasida xatolik"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
