// internal/app/features/contact/decode.go
package contact

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/dalemusser/portfolio/internal/app/system/limits"
	"github.com/dalemusser/portfolio/internal/domain/models"
)

// decodeSubmission reads the body as JSON, falling back to form fields.
// Anything it cannot make sense of yields an empty submission, which the
// validation step then rejects.
func decodeSubmission(w http.ResponseWriter, r *http.Request) models.ContactSubmission {
	var sub models.ContactSubmission
	if r.Body == nil {
		return sub
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limits.MaxContactBodySize))
	if err != nil {
		return sub
	}

	if fields, ok := decodeJSON(body); ok {
		return fields
	}
	return decodeForm(r, body)
}

// decodeJSON accepts only a JSON object. Values that are not strings are
// ignored rather than failing the whole body.
func decodeJSON(body []byte) (models.ContactSubmission, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		return models.ContactSubmission{}, false
	}
	get := func(key string) string {
		var s string
		if raw, ok := obj[key]; ok {
			_ = json.Unmarshal(raw, &s)
		}
		return s
	}
	return fromGetter(get), true
}

// decodeForm reads the body as form fields, but only when the request
// declares a form media type. Anything else yields an empty submission.
func decodeForm(r *http.Request, body []byte) models.ContactSubmission {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return models.ContactSubmission{}
	}

	switch mediaType {
	case "multipart/form-data":
		// Re-attach the body so the standard multipart parser can read it.
		r.Body = io.NopCloser(bytes.NewReader(body))
		if err := r.ParseMultipartForm(limits.MaxContactBodySize); err != nil {
			return models.ContactSubmission{}
		}
		return fromGetter(r.PostForm.Get)

	case "application/x-www-form-urlencoded":
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return models.ContactSubmission{}
		}
		return fromGetter(values.Get)

	default:
		return models.ContactSubmission{}
	}
}

func fromGetter(get func(string) string) models.ContactSubmission {
	return models.ContactSubmission{
		Name:    get(models.FieldName),
		Email:   get(models.FieldEmail),
		Phone:   get(models.FieldPhone),
		Subject: get(models.FieldSubject),
		Message: get(models.FieldMessage),
		Gotcha:  get(models.FieldGotcha),
	}
}
