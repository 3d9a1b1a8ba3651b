package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	reNumber  = regexp.MustCompile(`^[0-9]+$`)
	rePhone   = regexp.MustCompile(`^01[016789][0-9]{7,8}$`)
	rePostal  = regexp.MustCompile(`^[0-9]{5}$`)
	reDecimal = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)
)

// V validates request bodies. The wire formats (phone, postal code,
// decimal string) are registered as custom tags so every request struct
// shares one rule set.
var V = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return rePhone.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("postal", func(fl validator.FieldLevel) bool {
		return rePostal.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("decimalstr", func(fl validator.FieldLevel) bool {
		return reDecimal.MatchString(fl.Field().String())
	})
	return v
}

// Number validates a numeric-string identifier (path params) and
// converts it.
func Number(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if !reNumber.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
