package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// quotaUnlimited is the sentinel the panel uses for limits that are not
// enforced. Some endpoints send the literal word instead.
const quotaUnlimited = "-1"

// Quota is a used/limit pair as reported by the panel, e.g. "2048/10240".
// Unlimited quotas carry no meaningful Limit value.
type Quota struct {
	Used      int64
	Limit     int64
	Unlimited bool
}

// ParseQuota parses the panel's combined "used/limit" notation. A limit of
// "-1" or "unlimited" marks the quota as unlimited.
func ParseQuota(s string) (Quota, error) {
	used, limit, ok := strings.Cut(s, "/")
	if !ok {
		return Quota{}, zerr.With(zerr.With(ErrMalformedField, "value", s), "want", "used/limit")
	}

	u, err := strconv.ParseInt(strings.TrimSpace(used), 10, 64)
	if err != nil {
		return Quota{}, zerr.With(zerr.With(ErrMalformedField, "value", s), "part", "used")
	}

	limit = strings.TrimSpace(limit)
	if limit == quotaUnlimited || strings.EqualFold(limit, "unlimited") {
		return Quota{Used: u, Unlimited: true}, nil
	}

	l, err := strconv.ParseInt(limit, 10, 64)
	if err != nil {
		return Quota{}, zerr.With(zerr.With(ErrMalformedField, "value", s), "part", "limit")
	}

	return Quota{Used: u, Limit: l}, nil
}

// String renders the quota back in the panel's notation.
func (q Quota) String() string {
	if q.Unlimited {
		return fmt.Sprintf("%d/unlimited", q.Used)
	}
	return fmt.Sprintf("%d/%d", q.Used, q.Limit)
}
