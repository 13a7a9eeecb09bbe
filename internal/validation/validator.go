package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	emailRegex      = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`)
	panRegex        = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	ifscRegex       = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	aadharRegex     = regexp.MustCompile(`^[0-9]{12}$`)
	localPhoneRegex = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	accountNoRegex  = regexp.MustCompile(`^[0-9]{12}$`)
	digitRegex      = regexp.MustCompile(`[0-9]`)
	specialRegex    = regexp.MustCompile(`[!@#$%^&*()]`)
)

// Validator wraps the go-playground validator with the bank's format rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with the bank's custom rules
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("bank_email", validateEmail)
	_ = v.RegisterValidation("bank_phone_local", validateLocalPhone)
	_ = v.RegisterValidation("pan", validatePAN)
	_ = v.RegisterValidation("aadhar", validateAadhar)
	_ = v.RegisterValidation("ifsc", validateIFSC)
	_ = v.RegisterValidation("bank_password", validatePassword)
	_ = v.RegisterValidation("account_number", validateAccountNumber)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Predicate helpers for callers validating a single field at a time

// IsValidEmail checks the bank's email format
func (v *Validator) IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPAN checks the tax-ID format: 5 letters, 4 digits, 1 letter
func (v *Validator) IsValidPAN(pan string) bool {
	return panRegex.MatchString(pan)
}

// IsValidIFSC checks the routing-code format: 4 letters, literal 0, 6 alphanumerics
func (v *Validator) IsValidIFSC(ifsc string) bool {
	return ifscRegex.MatchString(ifsc)
}

// IsValidAadhar checks the national-ID format: exactly 12 digits
func (v *Validator) IsValidAadhar(aadhar string) bool {
	return aadharRegex.MatchString(aadhar)
}

// IsValidLocalPhone checks a bare 10-digit local number with a leading 6-9
func (v *Validator) IsValidLocalPhone(phone string) bool {
	return localPhoneRegex.MatchString(phone)
}

// IsValidAccountNumber checks a system-generated 12-digit account number
func (v *Validator) IsValidAccountNumber(accountNumber string) bool {
	return accountNoRegex.MatchString(accountNumber)
}

// IsValidPassword checks the password policy: at least 8 chars, one digit,
// one of !@#$%^&*()
func (v *Validator) IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return digitRegex.MatchString(password) && specialRegex.MatchString(password)
}

// Custom validation functions

func validateEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func validateLocalPhone(fl validator.FieldLevel) bool {
	return localPhoneRegex.MatchString(fl.Field().String())
}

func validatePAN(fl validator.FieldLevel) bool {
	return panRegex.MatchString(fl.Field().String())
}

func validateAadhar(fl validator.FieldLevel) bool {
	return aadharRegex.MatchString(fl.Field().String())
}

func validateIFSC(fl validator.FieldLevel) bool {
	return ifscRegex.MatchString(fl.Field().String())
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}
	return digitRegex.MatchString(password) && specialRegex.MatchString(password)
}

func validateAccountNumber(fl validator.FieldLevel) bool {
	return accountNoRegex.MatchString(fl.Field().String())
}
