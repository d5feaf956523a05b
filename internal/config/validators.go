package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/dino50687/imgcrypt/internal/codec"
	"github.com/dino50687/imgcrypt/internal/transform"
)

// newValidator returns a validator that reports fields by their label tag and
// knows the imagepath rule.
func newValidator() (*validator.Validator, error) {
	validate := validator.NewValidator()

	if err := validate.RegisterValidationAndTranslation(
		"imagepath",
		validateImagePath,
		"{0} must end in a supported image extension (png, jpg, jpeg, gif, bmp, tif, tiff, webp)",
	); err != nil {
		return nil, fmt.Errorf("registering imagepath validation: %w", err)
	}

	validate.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return validate, nil
}

// validateImagePath checks that the extension maps to a known image format.
func validateImagePath(fl validator.FieldLevel) bool {
	field := fl.Field()

	if field.Kind() != reflect.String {
		return false
	}

	_, err := codec.FormatFor(field.String())

	return err == nil
}

// validate checks s against its struct tags. Every violation is reported,
// joined under ErrInvalidParameter.
func validate(s any) error {
	v, err := newValidator()
	if err != nil {
		return err
	}

	if errs := v.Validate(s); len(errs) > 0 {
		return fmt.Errorf("%w: validating configuration: %w", transform.ErrInvalidParameter, errors.Join(errs...))
	}

	return nil
}
