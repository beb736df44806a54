package jwtkit

import (
	"encoding/json"
	"fmt"
	"time"
)

// Claim keys owned by the fixed Claims fields. Extra entries using these
// keys are dropped on encode so the fixed fields can never be shadowed.
const (
	claimSubject    = "pid"
	claimExpiration = "exp"
)

// Claims is the payload of a token: a fixed subject identifier and expiration
// merged with an open map of application claims. Extra values may nest
// arbitrarily (objects, arrays, numbers, strings, booleans, null) and survive
// an issue/validate round trip unchanged, in the shapes encoding/json
// produces for untyped values (map[string]any, []any, float64, string, bool,
// nil).
type Claims struct {
	PID   string
	Exp   int64
	Extra map[string]any
}

// NewClaims builds claims for the given subject and expiration. The subject
// must be non-empty. The extra map is referenced as-is; entries named pid or
// exp are ignored on encode in favour of the fixed fields.
func NewClaims(pid string, exp time.Time, extra map[string]any) (Claims, error) {
	if pid == "" {
		return Claims{}, ErrInvalidSubject
	}
	return Claims{
		PID:   pid,
		Exp:   exp.Unix(),
		Extra: extra,
	}, nil
}

// ExpiresAt returns the expiration as a time.Time.
func (c Claims) ExpiresAt() time.Time {
	return time.Unix(c.Exp, 0)
}

// expired reports whether the claims are expired at the given instant.
// A token whose exp equals the current second is already expired.
func (c Claims) expired(now time.Time) bool {
	return c.Exp <= now.Unix()
}

// MarshalJSON encodes the claims as a single flat object with pid and exp at
// the top level alongside every extra key.
func (c Claims) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+2)
	for k, v := range c.Extra {
		if k == claimSubject || k == claimExpiration {
			continue
		}
		out[k] = v
	}
	out[claimSubject] = c.PID
	out[claimExpiration] = c.Exp
	return json.Marshal(out)
}

// UnmarshalJSON extracts pid and exp as required fields and keeps every other
// top-level key in Extra. A missing or wrongly typed required field reports
// ErrMissingClaim.
func (c *Claims) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	pid, ok := raw[claimSubject].(string)
	if !ok || pid == "" {
		return fmt.Errorf("%w: %s", ErrMissingClaim, claimSubject)
	}
	// encoding/json decodes every JSON number into float64, which is exact
	// for unix timestamps well past the year 285,000,000.
	exp, ok := raw[claimExpiration].(float64)
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingClaim, claimExpiration)
	}

	delete(raw, claimSubject)
	delete(raw, claimExpiration)
	if len(raw) == 0 {
		raw = nil
	}

	*c = Claims{
		PID:   pid,
		Exp:   int64(exp),
		Extra: raw,
	}
	return nil
}
