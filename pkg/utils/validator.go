package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// "Free" ya da en fazla iki ondalıklı pozitif tutar
var priceRegex = regexp.MustCompile(`^(Free|\d+(\.\d{1,2})?)$`)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Hata mesajlarında struct alanı yerine json adını kullan
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Custom validations
	v.RegisterValidation("supported_image", validateImageType)
	v.RegisterValidation("price", validatePrice)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FirstInvalidField returns the json name of the first field that failed
// validation, or "" when err carries no field errors.
func FirstInvalidField(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return errs[0].Field()
	}
	return ""
}

// Desteklenen resim formatlarını kontrol et
func validateImageType(fl validator.FieldLevel) bool {
	mimeType := fl.Field().String()
	supportedTypes := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
	return supportedTypes[mimeType]
}

func validatePrice(fl validator.FieldLevel) bool {
	return priceRegex.MatchString(fl.Field().String())
}
