package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// listSeparator separates elements of list-valued fields on the wire. Rows
// already use the pipe between cells, so list values inside a cell use the
// comma.
const listSeparator = ","

// Snapshot is a flat key-value view of one remote resource, as delivered by
// a panel listing or settings command. Resource objects are hydrated from
// snapshots; every access is validated so that a missing or malformed field
// fails fast instead of propagating zero values.
type Snapshot map[string]string

// Field returns the raw value for key.
func (s Snapshot) Field(key string) (string, error) {
	v, ok := s[key]
	if !ok {
		return "", zerr.With(ErrMissingField, "field", key)
	}
	return v, nil
}

// IntField returns the value for key parsed as a base-10 integer.
func (s Snapshot) IntField(key string) (int64, error) {
	v, err := s.Field(key)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, zerr.With(zerr.With(ErrMalformedField, "field", key), "value", v)
	}
	return n, nil
}

// BoolField returns the value for key interpreted as the panel's "0"/"1"
// flag notation.
func (s Snapshot) BoolField(key string) (bool, error) {
	v, err := s.Field(key)
	if err != nil {
		return false, err
	}

	switch strings.TrimSpace(v) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, zerr.With(zerr.With(ErrMalformedField, "field", key), "value", v)
	}
}

// QuotaField returns the value for key parsed as a used/limit quota.
func (s Snapshot) QuotaField(key string) (Quota, error) {
	v, err := s.Field(key)
	if err != nil {
		return Quota{}, err
	}

	q, err := ParseQuota(v)
	if err != nil {
		return Quota{}, zerr.With(err, "field", key)
	}
	return q, nil
}

// ListField returns the value for key split on the panel's pipe separator.
// An empty value yields an empty list.
func (s Snapshot) ListField(key string) ([]string, error) {
	v, err := s.Field(key)
	if err != nil {
		return nil, err
	}

	if v == "" {
		return nil, nil
	}
	return strings.Split(v, listSeparator), nil
}
