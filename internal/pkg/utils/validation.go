package utils

import (
	"careportal-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	uppercasePattern = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	lowercasePattern = regexp.MustCompile(constvars.RegexContainAtLeastOneLowercase)
	digitPattern     = regexp.MustCompile(constvars.RegexContainAtLeastOneDigit)
)

// Password requirement labels, in the order they are reported.
const (
	PasswordRequirementLength    = "≥8 chars"
	PasswordRequirementLowercase = "lowercase"
	PasswordRequirementUppercase = "uppercase"
	PasswordRequirementDigit     = "number"
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("yes_no", validateYesNo)
	validate.RegisterValidation("role", validateRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateYesNo(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "yes" || value == "no"
}

func validateRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RolePatient || value == constvars.RoleDoctor
}

// PasswordRequirements lists the unmet password rules. An empty result means
// the password is acceptable.
func PasswordRequirements(password string) []string {
	unmet := []string{}
	if len([]rune(password)) < 8 {
		unmet = append(unmet, PasswordRequirementLength)
	}
	if !lowercasePattern.MatchString(password) {
		unmet = append(unmet, PasswordRequirementLowercase)
	}
	if !uppercasePattern.MatchString(password) {
		unmet = append(unmet, PasswordRequirementUppercase)
	}
	if !digitPattern.MatchString(password) {
		unmet = append(unmet, PasswordRequirementDigit)
	}
	return unmet
}

// ConfirmMismatch returns the inline mismatch message, or "" when the
// confirmation is empty or equal to the password.
func ConfirmMismatch(password, confirm string) string {
	if confirm != "" && password != confirm {
		return constvars.ErrClientPasswordsDoNotMatch
	}
	return ""
}
