package gastype

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidGasType    = errors.New("invalid_gas_type")
	ErrNoCylindersParsed = errors.New("no_cylinders_parsed")
)

// InvalidTokenError reports a token that is neither an integer nor an
// ascending integer range.
type InvalidTokenError struct {
	Token string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid_token: %q", e.Token)
}

// Resolve expands free-form counter input ("1,3-5, 12") into canonical
// cylinder numbers for the given gas, preserving first-seen order and
// dropping duplicates. An input that yields no numbers is an error, not
// a silent no-op.
func Resolve(typeName, rawInput string) ([]string, error) {
	t, ok := Lookup(typeName)
	if !ok {
		return nil, ErrInvalidGasType
	}

	seen := make(map[string]struct{})
	out := make([]string, 0, 8)
	add := func(n int) {
		id := t.Identifier(n)
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for _, token := range strings.Split(rawInput, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if strings.Contains(token, "-") {
			parts := strings.SplitN(token, "-", 2)
			lo, err := parseSequence(parts[0])
			if err != nil {
				return nil, &InvalidTokenError{Token: token}
			}
			hi, err := parseSequence(parts[1])
			if err != nil || hi < lo {
				return nil, &InvalidTokenError{Token: token}
			}
			for n := lo; n <= hi; n++ {
				add(n)
			}
			continue
		}
		n, err := parseSequence(token)
		if err != nil {
			return nil, &InvalidTokenError{Token: token}
		}
		add(n)
	}

	if len(out) == 0 {
		return nil, ErrNoCylindersParsed
	}
	return out, nil
}

// maxSequence bounds the 4-digit identifier namespace. Rejecting
// anything above it also caps how many numbers one range token can
// expand to.
const maxSequence = 9999

func parseSequence(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if n < 1 || n > maxSequence {
		return 0, fmt.Errorf("sequence out of range: %d", n)
	}
	return n, nil
}
