// Package bind provides form binding and validation helpers for handlers
package bind

import (
	"errors"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	perr "newsletter/internal/platform/errors"
	"newsletter/internal/platform/logger"
	"newsletter/internal/platform/validate"

	"github.com/go-playground/validator/v10"
)

// FormContentType is the only body type ParseForm accepts
const FormContentType = "application/x-www-form-urlencoded"

// FormOptions controls parsing behavior
type FormOptions struct {
	MaxBytes int64 // default 1MB
}

func defaultFormOptions() FormOptions {
	return FormOptions{MaxBytes: 1 << 20}
}

// ParseForm decodes an urlencoded body into T through `form` tags and validates it
// fields are string or *string; a *string stays nil when its key is absent so
// `validate:"required"` tells a missing key apart from an empty value
// a non-form Content-Type is ErrorCodeUnsupportedMedia (415), a body over MaxBytes is
// ErrorCodeTooLarge (413), every other failure is ErrorCodeInvalidArgument (422)
func ParseForm[T any](r *http.Request, opts ...FormOptions) (T, error) {
	var zero T
	o := defaultFormOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	if err := checkContentType(r.Header.Get("Content-Type")); err != nil {
		return zero, err
	}
	if o.MaxBytes > 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(nil, r.Body, o.MaxBytes)
	}
	if err := r.ParseForm(); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return zero, perr.Wrapf(err, perr.ErrorCodeTooLarge, "form body over %d bytes", tooBig.Limit)
		}
		return zero, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "invalid form body")
	}

	var dst T
	if err := decodeForm(r.PostForm, &dst); err != nil {
		return zero, err
	}

	if err := validate.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return zero, perr.Internalf("validation error")
		}
		field, msg := validate.FieldAndMessage(err)
		return zero, perr.WithField(perr.InvalidArgf("%s", msg), field)
	}
	return dst, nil
}

func checkContentType(ct string) error {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil || mt != FormContentType {
		return perr.Newf(perr.ErrorCodeUnsupportedMedia, "expected %s body, got %q", FormContentType, ct)
	}
	return nil
}

func decodeForm(vals url.Values, dst any) error {
	rv := reflect.ValueOf(dst).Elem()
	if rv.Kind() != reflect.Struct {
		return perr.Internalf("form target must be a struct, got %s", rv.Kind())
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		key := formKey(f)
		if key == "" || !f.IsExported() {
			continue
		}
		vs, ok := vals[key]
		if !ok || len(vs) == 0 {
			continue
		}
		if len(vs) > 1 {
			return perr.WithField(perr.InvalidArgf("duplicate form key %q", key), key)
		}

		fv := rv.Field(i)
		switch {
		case f.Type.Kind() == reflect.String:
			fv.SetString(vs[0])
		case f.Type.Kind() == reflect.Pointer && f.Type.Elem().Kind() == reflect.String:
			p := reflect.New(f.Type.Elem())
			p.Elem().SetString(vs[0])
			fv.Set(p)
		default:
			return perr.Internalf("unsupported form field %s of type %s", f.Name, f.Type)
		}
	}
	return nil
}

func formKey(f reflect.StructField) string {
	tag := f.Tag.Get("form")
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	if tag == "-" {
		return ""
	}
	return tag
}
