package apperror

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type FieldViolation struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// "pagination.take" -> "Pagination Take"
func formatFieldName(s string) string {
	s = strings.NewReplacer("_", " ", ".", " ").Replace(s)
	caser := cases.Title(language.English)
	return caser.String(s)
}

// fieldPath drops the root struct name from the namespace so nested
// fields read as "pagination.take".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

// MapValidationError converts binding/validator failures into a
// VALIDATION_ERROR AppError. The message comes from the first violation,
// every violation is kept in Details.
func MapValidationError(err error) *AppError {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		violations := make([]FieldViolation, 0, len(errs))
		for _, fe := range errs {
			violations = append(violations, FieldViolation{
				Field: fieldPath(fe),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}

		e := errs[0]
		humanReadableField := formatFieldName(fieldPath(e))

		var appErr *AppError
		switch e.Tag() {
		case "required":
			appErr = RequiredField(humanReadableField)
		default:
			appErr = InvalidField(humanReadableField)
		}
		appErr.Err = err
		return appErr.WithDetails(violations)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return Wrap(err, CodeValidationError, "malformed JSON body", http.StatusBadRequest)
	case errors.As(err, &typeErr):
		return Wrap(err, CodeValidationError, formatFieldName(typeErr.Field)+" has invalid type", http.StatusBadRequest)
	}

	appErr := New(CodeValidationError, "Invalid input", http.StatusBadRequest)
	appErr.Err = err
	return appErr
}
