package validator

import (
	"net/url"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	initOnce sync.Once
	validate *validator.Validate
)

// Init builds the shared validator and registers the custom tags on gin's
// binding engine as well, so query structs can use them.
func Init() {
	initOnce.Do(func() {
		validate = validator.New()
		registerCustomValidations(validate)

		if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerCustomValidations(engine)
		}
	})
}

func registerCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("navlink", validateNavLink)
	_ = v.RegisterValidation("sitepath", validateSitePath)
}

func Validate(s interface{}) error {
	Init()
	return validate.Struct(s)
}

func Var(field interface{}, tag string) error {
	Init()
	return validate.Var(field, tag)
}

func validateNavLink(fl validator.FieldLevel) bool {
	return IsNavLink(fl.Field().String())
}

func validateSitePath(fl validator.FieldLevel) bool {
	return IsSitePath(fl.Field().String())
}

// IsSitePath accepts absolute paths on this site; protocol-relative URLs are
// rejected.
func IsSitePath(value string) bool {
	return strings.HasPrefix(value, "/") && !strings.HasPrefix(value, "//")
}

// IsNavLink accepts site paths plus http(s) and mailto URLs.
func IsNavLink(value string) bool {
	if strings.HasPrefix(value, "/") {
		return IsSitePath(value)
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}
	switch parsed.Scheme {
	case "http", "https":
		return parsed.Host != ""
	case "mailto":
		return parsed.Opaque != ""
	}
	return false
}
