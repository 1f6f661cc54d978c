package user

import (
	"regexp"

	"travelhub/utils"
)

var (
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasLower  = regexp.MustCompile(`[a-z]`)
	hasNumber = regexp.MustCompile(`[0-9]`)
)

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	switch {
	case len(pw) < 8:
		return utils.NewValidationError("password must be at least 8 characters long", "password")
	case !hasUpper.MatchString(pw):
		return utils.NewValidationError("password must include at least one uppercase letter", "password")
	case !hasLower.MatchString(pw):
		return utils.NewValidationError("password must include at least one lowercase letter", "password")
	case !hasNumber.MatchString(pw):
		return utils.NewValidationError("password must include at least one number", "password")
	}
	return nil
}
