package freshsales

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// Params holds query parameters for one request. Values are scalars;
// entries with a nil value are dropped, and booleans serialize as the
// literal strings "true"/"false" as the remote API expects.
type Params map[string]any

// NewParams creates an empty parameter map.
func NewParams() Params {
	return Params{}
}

// With sets a parameter and returns the map for chaining.
func (p Params) With(key string, value any) Params {
	p[key] = value

	return p
}

// Merge returns a copy of p with every non-nil entry of overrides applied
// on top. Neither input is mutated.
func (p Params) Merge(overrides Params) Params {
	merged := make(Params, len(p)+len(overrides))

	for key, value := range p {
		merged[key] = value
	}

	for key, value := range overrides {
		if value != nil {
			merged[key] = value
		}
	}

	return merged
}

// ToValues encodes the parameters as url.Values.
func (p Params) ToValues() url.Values {
	values := url.Values{}

	for key, value := range p {
		if value == nil {
			continue
		}

		values.Set(key, encodeScalar(value))
	}

	return values
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func encodeScalar(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
