// Package binding exposes the NotExists rule as a go-playground/validator tag
// so request structs can declare it next to their other constraints:
//
//	type UploadRequest struct {
//		File *multipart.FileHeader `form:"file" validate:"required,file_not_exists"`
//	}
//
// string fields are checked as plain paths, multipart.FileHeader fields by
// their original file name.
package binding

import (
	"errors"
	"fmt"
	"mime/multipart"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/nyasuto/fileguard/internal/validator/file"
)

// Tag is the struct tag name of the rule
const Tag = "file_not_exists"

// Checker runs the rule. *file.NotExists satisfies it, as does anything that
// wraps one behind a lock.
type Checker interface {
	Check(in file.Input) file.Result
}

// Register installs the rule on v.
func Register(v *validator.Validate, c Checker) error {
	if v == nil || c == nil {
		return fmt.Errorf("register %s: validator and checker are required", Tag)
	}

	v.RegisterCustomTypeFunc(uploadName, multipart.FileHeader{})

	if err := v.RegisterValidation(Tag, func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return c.Check(file.PlainPath(field.String())).Valid
	}); err != nil {
		return fmt.Errorf("register %s: %w", Tag, err)
	}
	return nil
}

// New returns a validator with the rule installed.
func New(c Checker) (*validator.Validate, error) {
	v := validator.New()
	if err := Register(v, c); err != nil {
		return nil, err
	}
	return v, nil
}

func uploadName(field reflect.Value) interface{} {
	fh, ok := field.Interface().(multipart.FileHeader)
	if !ok {
		return nil
	}
	up, err := file.UploadFromHeader(&fh)
	if err != nil {
		return ""
	}
	return up.OriginalName
}

// Failed lists the struct fields rejected by the rule, or nil when err is not
// a validation error.
func Failed(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	var fields []string
	for _, fe := range verrs {
		if fe.Tag() == Tag {
			fields = append(fields, fe.Field())
		}
	}
	return fields
}
