package errors

// ErrorCode represents a standardized error code a presentation layer can map
// onto its own surface (console message, API payload, etc.)
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthAccountFrozen      ErrorCode = "AUTH_002"
	AuthAccountClosed      ErrorCode = "AUTH_003"
	AuthOTPRequired        ErrorCode = "AUTH_004"
	AuthInvalidToken       ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_003"
	ValidationInvalidPhone  ErrorCode = "VALIDATION_004"
	ValidationInvalidPAN    ErrorCode = "VALIDATION_005"
	ValidationInvalidAadhar ErrorCode = "VALIDATION_006"
	ValidationInvalidIFSC   ErrorCode = "VALIDATION_007"
	ValidationWeakPassword  ErrorCode = "VALIDATION_008"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound          ErrorCode = "ACCOUNT_001"
	AccountNotActive         ErrorCode = "ACCOUNT_002"
	AccountInsufficientFunds ErrorCode = "ACCOUNT_003"
	AccountAlreadyFrozen     ErrorCode = "ACCOUNT_004"
	AccountNotFrozen         ErrorCode = "ACCOUNT_005"
	AccountNumberExhausted   ErrorCode = "ACCOUNT_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount ErrorCode = "TRANSACTION_001"
	TransactionSelfTransfer  ErrorCode = "TRANSACTION_002"
	TransactionDestMissing   ErrorCode = "TRANSACTION_003"
	TransactionDestInactive  ErrorCode = "TRANSACTION_004"
)

// Payee error codes (PAYEE_*)
const (
	PayeeAlreadyExists  ErrorCode = "PAYEE_001"
	PayeeSelfNotAllowed ErrorCode = "PAYEE_002"
	PayeeNotOwned       ErrorCode = "PAYEE_003"
	PayeeTargetMissing  ErrorCode = "PAYEE_004"
)

// Administrator error codes (ADMIN_*)
const (
	AdminNotFound      ErrorCode = "ADMIN_001"
	AdminUsernameTaken ErrorCode = "ADMIN_002"
)

// OTP error codes (OTP_*)
const (
	OTPDeliveryFailed ErrorCode = "OTP_001"
	OTPMismatch       ErrorCode = "OTP_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError ErrorCode = "SYSTEM_001"
	SystemStorageError  ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid account number or password",
	AuthAccountFrozen:      "This account is FROZEN. Please contact the bank",
	AuthAccountClosed:      "This account is CLOSED. Please contact the bank",
	AuthOTPRequired:        "A one-time code is required to finish signing in",
	AuthInvalidToken:       "Session token is invalid or expired",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidEmail:  "Invalid email format",
	ValidationInvalidPhone:  "Invalid phone number. Must be 10 digits or in international format",
	ValidationInvalidPAN:    "Invalid PAN card format",
	ValidationInvalidAadhar: "Invalid Aadhar card format. Must be 12 digits",
	ValidationInvalidIFSC:   "Invalid IFSC code format",
	ValidationWeakPassword:  "Password must be at least 8 chars, with a number and special char",

	AccountNotFound:          "No account found with that number",
	AccountNotActive:         "Account is not active",
	AccountInsufficientFunds: "Insufficient funds",
	AccountAlreadyFrozen:     "This account is already frozen",
	AccountNotFrozen:         "This account is not frozen",
	AccountNumberExhausted:   "Could not allocate a unique account number",

	TransactionInvalidAmount: "Amount must be positive",
	TransactionSelfTransfer:  "Cannot transfer money to yourself",
	TransactionDestMissing:   "The recipient account number does not exist",
	TransactionDestInactive:  "The recipient account is not active",

	PayeeAlreadyExists:  "You have already added this payee",
	PayeeSelfNotAllowed: "You cannot add yourself as a payee",
	PayeeNotOwned:       "Payee ID not found or you do not own this payee",
	PayeeTargetMissing:  "The payee account number does not exist",

	AdminNotFound:      "Invalid admin username or password",
	AdminUsernameTaken: "Username is already taken",

	OTPDeliveryFailed: "Could not send OTP. Please try again later",
	OTPMismatch:       "The one-time code did not match",

	SystemInternalError: "An unexpected error occurred",
	SystemStorageError:  "A database error occurred. Please try again",
}

// GetErrorMessage returns the default message for a given error code.
// If the error code is not found, it returns a generic error message.
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
