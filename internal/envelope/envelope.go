// Package envelope unwraps the {"Content": ...} wrapper that devices use to
// ship sync documents to the host.
//
// Two variants exist on the wire: Decode handles a base64-encoded inner JSON
// document, DecodePlain handles a wrapper whose Content is the JSON object
// itself. Both are generic over the inner document type; the caller picks
// the schema, there is no discriminator on the wire. Decoding is
// all-or-nothing: on error the zero value of T is returned.
package envelope

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

// Keys on the wire match field tags exactly; "content" is not "Content".
// Both values only cache per-type metadata and never influence results.
var (
	codec = jsoniter.Config{
		EscapeHTML:             true,
		ValidateJsonRawMessage: true,
		CaseSensitive:          true,
	}.Froze()
	validate = validator.New(validator.WithRequiredStructEnabled())
)

type base64Envelope struct {
	Content *string `json:"Content" validate:"required"`
}

type plainEnvelope struct {
	Content json.RawMessage `json:"Content" validate:"required"`
}

// Decode parses a base64 envelope and decodes its inner document into T.
func Decode[T any](data []byte) (T, error) {
	var zero T

	var outer base64Envelope
	if err := unmarshalValid(data, &outer); err != nil {
		return zero, newError(MalformedJSON, fmt.Errorf("outer envelope: %w", err))
	}

	inner, err := decodeBase64(*outer.Content)
	if err != nil {
		return zero, newError(InvalidBase64, err)
	}

	var v T
	if err := unmarshalValid(inner, &v); err != nil {
		return zero, newError(MalformedJSON, fmt.Errorf("inner document: %w", err))
	}
	return v, nil
}

// DecodePlain parses an envelope whose Content is the inner JSON document.
func DecodePlain[T any](data []byte) (T, error) {
	var zero T

	var outer plainEnvelope
	if err := unmarshalValid(data, &outer); err != nil {
		return zero, newError(MalformedJSON, fmt.Errorf("outer envelope: %w", err))
	}

	var v T
	if err := unmarshalValid(outer.Content, &v); err != nil {
		return zero, newError(MalformedJSON, fmt.Errorf("inner document: %w", err))
	}
	return v, nil
}

// Encode wraps v the way a device does: JSON, then base64, then the
// Content envelope.
func Encode[T any](v T) ([]byte, error) {
	inner, err := codec.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode inner document: %w", err)
	}
	content := base64.StdEncoding.EncodeToString(inner)
	return codec.Marshal(base64Envelope{Content: &content})
}

// decodeBase64 is StdEncoding without its tolerance for line breaks.
func decodeBase64(s string) ([]byte, error) {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, base64.CorruptInputError(i)
	}
	return base64.StdEncoding.DecodeString(s)
}

// unmarshalValid decodes data into v and enforces validate tags when v
// points at a struct. Non-struct targets (slices, maps) are only decoded.
func unmarshalValid(data []byte, v any) error {
	if err := codec.Unmarshal(data, v); err != nil {
		return err
	}

	err := validate.Struct(v)
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}
	return err
}
