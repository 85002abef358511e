package users

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// PayloadKeys are the envelope fields that may carry the identity, in lookup order.
var PayloadKeys = []string{"record", "user", "new"}

// Identity is the part of an identity event this service consumes.
type Identity struct {
	ID    string
	Email *string
	// Source is the envelope key the identity was read from.
	Source string
}

// ExtractIdentity parses a webhook body and locates the identity under the
// first of record, user or new that is present and not null.
func ExtractIdentity(body []byte) (Identity, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Identity{}, ErrMissingIdentity
		}
		return Identity{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	source, raw := locate(envelope)
	if raw == nil {
		return Identity{}, ErrMissingIdentity
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Identity{Source: source}, ErrMissingIdentity
	}

	id, ok := stringField(fields["id"])
	if !ok || id == "" {
		return Identity{Source: source}, ErrMissingIdentity
	}

	identity := Identity{ID: id, Source: source}
	if rawEmail, present := fields["email"]; present && !isNull(rawEmail) {
		email, ok := stringField(rawEmail)
		if !ok {
			return identity, fmt.Errorf("%w: email is not a string", ErrMalformedPayload)
		}
		identity.Email = &email
	}
	return identity, nil
}

func locate(envelope map[string]json.RawMessage) (string, json.RawMessage) {
	for _, key := range PayloadKeys {
		raw, ok := envelope[key]
		if !ok || isNull(raw) {
			continue
		}
		return key, raw
	}
	return "", nil
}

func stringField(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
