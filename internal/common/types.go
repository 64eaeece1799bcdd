package common

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TrimmedString drops surrounding whitespace while decoding, so "required"
// validation sees the trimmed value.
type TrimmedString string

func (s *TrimmedString) UnmarshalJSON(b []byte) error {
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = ""
		return nil
	}
	*s = TrimmedString(strings.TrimSpace(*raw))
	return nil
}

func (s TrimmedString) String() string {
	return string(s)
}

// OptionalString returns nil for an empty value.
func (s TrimmedString) OptionalString() *string {
	if s == "" {
		return nil
	}
	v := string(s)
	return &v
}

// FlexibleInt accepts a JSON number or a string with leading digits ("4", "4 meses").
// Anything without leading digits decodes to 0.
type FlexibleInt int

func (n *FlexibleInt) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "null" {
		*n = 0
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = FlexibleInt(leadingInt(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("expected a number, got %s", trimmed)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("number %s out of range", trimmed)
	}
	*n = FlexibleInt(int(f))
	return nil
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}
