package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthAccountLocked      ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
	UserInvalidID     ErrorCode = "USER_003"
)

// Month error codes (MONTH_*)
const (
	MonthNotFound      ErrorCode = "MONTH_001"
	MonthClosed        ErrorCode = "MONTH_002"
	MonthAlreadyExists ErrorCode = "MONTH_003"
	MonthInvalidPeriod ErrorCode = "MONTH_004"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInUse         ErrorCode = "CATEGORY_003"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound      ErrorCode = "BUDGET_001"
	BudgetInvalidAmount ErrorCode = "BUDGET_002"
	BudgetDuplicate     ErrorCode = "BUDGET_003"
)

// Entry error codes for income, fixed expenses and items (ENTRY_*)
const (
	EntryNotFound      ErrorCode = "ENTRY_001"
	EntryInvalidAmount ErrorCode = "ENTRY_002"
	EntryInvalidLabel  ErrorCode = "ENTRY_003"
)

// Currency error codes (CURRENCY_*)
const (
	CurrencyUnknownCode   ErrorCode = "CURRENCY_001"
	CurrencySaveFailed    ErrorCode = "CURRENCY_002"
	CurrencyUnknownLocale ErrorCode = "CURRENCY_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid username or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthAccountLocked:      "Account is locked or disabled",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// User errors
	UserNotFound:      "User not found",
	UserAlreadyExists: "An account with this username already exists",
	UserInvalidID:     "Invalid user ID format",

	// Month errors
	MonthNotFound:      "Month not found",
	MonthClosed:        "Month is closed",
	MonthAlreadyExists: "A month for this period already exists",
	MonthInvalidPeriod: "Invalid month or year value",

	// Category errors
	CategoryNotFound:      "Budget category not found",
	CategoryAlreadyExists: "A budget category with this label already exists",
	CategoryInUse:         "Budget category is referenced by existing items",

	// Budget errors
	BudgetNotFound:      "Monthly budget not found",
	BudgetInvalidAmount: "Invalid budget amount",
	BudgetDuplicate:     "A budget for this category already exists in this month",

	// Entry errors
	EntryNotFound:      "Entry not found",
	EntryInvalidAmount: "Invalid entry amount",
	EntryInvalidLabel:  "Invalid entry label",

	// Currency errors
	CurrencyUnknownCode:   "Unknown currency code",
	CurrencySaveFailed:    "Failed to save currency selection",
	CurrencyUnknownLocale: "Unknown locale tag",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
