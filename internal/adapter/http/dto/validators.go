package dto

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/holiman/uint256"
)

// safeAddrRe matches opaque account identifiers: alphanumeric plus the
// separators the ledger's own derived addresses use. Keeps raw markup and
// control characters out of stored events.
var safeAddrRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.:]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_addr", validateSafeAddr)
		_ = v.RegisterValidation("u256", validateU256)
	}
}

func validateSafeAddr(fl validator.FieldLevel) bool {
	return safeAddrRe.MatchString(fl.Field().String())
}

// validateU256 accepts a plain decimal string within the 256-bit range. No
// sign, no whitespace, no exponent.
func validateU256(fl validator.FieldLevel) bool {
	_, err := uint256.FromDecimal(fl.Field().String())
	return err == nil
}

// ParseAmount converts a validated decimal string into a 256-bit amount.
func ParseAmount(s string) (*uint256.Int, error) {
	return uint256.FromDecimal(s)
}

// SanitizeStruct trims whitespace on every exported string field (including
// *string) of a struct pointer. The charset validators reject markup, so
// trimming is all that is needed here.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(strings.TrimSpace(elem.String()))
			}
		}
	}
}
