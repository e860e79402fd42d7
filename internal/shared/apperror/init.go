package apperror

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func Init() {
	// Pakai nama dari tag json supaya pesan validasi menyebut "date_to", bukan "DateTo"
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterJSONTagNames(v)
	}
}

func RegisterJSONTagNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
