package utils

import (
	"encoding/base64"
	"lablink-service/internal/pkg/constvars"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var accountNumberRegex = regexp.MustCompile(constvars.RegexAccountNumber)

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidAccountNumber reports whether the value satisfies the 17-34 digit
// rule. The rule only applies when a fee is charged; callers gate on that.
func ValidAccountNumber(accountNumber string) bool {
	return accountNumberRegex.MatchString(accountNumber)
}

// DecodeBase64Payload strips an optional data-URL prefix and decodes the
// remainder.
func DecodeBase64Payload(encoded string) ([]byte, error) {
	if idx := strings.Index(encoded, ","); idx != -1 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[idx+1:]
	}
	return base64.StdEncoding.DecodeString(encoded)
}
