package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/fenilmodi00/ipo-pulse/models"
)

// SubscriptionUnavailable is returned when no subscription object is present
const SubscriptionUnavailable = "N/A"

// leadingDecimalRegex matches the numeric prefix a lenient float parser accepts
var leadingDecimalRegex = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// RenderSafe turns any record value into a display string without ever failing.
// Absent and null values render as "", primitives as their plain text and
// objects or arrays as compact JSON.
func RenderSafe(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case models.Field:
		return renderRaw(v.Raw())
	case *models.Field:
		if v == nil {
			return ""
		}
		return renderRaw(v.Raw())
	case json.RawMessage:
		return renderRaw(v)
	case string:
		return v
	case json.Number:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return v.String()
		}
		return formatJSNumber(f)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatJSNumber(v)
	case float32:
		return formatJSNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return renderRaw(data)
	}
}

func renderRaw(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return ""
		}
		return s
	case '{', '[':
		var compacted bytes.Buffer
		if err := json.Compact(&compacted, trimmed); err != nil {
			return ""
		}
		return compacted.String()
	case 't', 'f':
		return string(trimmed)
	default:
		f, err := strconv.ParseFloat(string(trimmed), 64)
		if err != nil {
			return ""
		}
		return formatJSNumber(f)
	}
}

// formatJSNumber prints a float the way a browser would stringify it
func formatJSNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		formatted := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exponent, _ := strings.Cut(formatted, "e")
		exp, err := strconv.Atoi(exponent)
		if err != nil {
			return formatted
		}
		return fmt.Sprintf("%se%+d", mantissa, exp)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// AggregateSubscription sums the retail, NII and QIB multiples of a subscription
// object and formats the total with one decimal and an "x" suffix ("13.8x").
// Anything that is not an object yields "N/A"; unreadable categories count as zero.
func AggregateSubscription(subscription interface{}) (total string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			total = SubscriptionUnavailable
		}
	}()

	fields, ok := subscriptionFields(subscription)
	if !ok {
		return SubscriptionUnavailable
	}

	sum := cleanMultiple(fields["retail"]) + cleanMultiple(fields["nii"]) + cleanMultiple(fields["qib"])
	return formatFixed(sum, 1) + "x"
}

// subscriptionFields normalizes the input into a key/value view.
// Arrays are treated as objects without the expected keys.
func subscriptionFields(value interface{}) (map[string]interface{}, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case models.Field:
		if v.IsNull() {
			return nil, false
		}
		return subscriptionFields(v.Value())
	case *models.Field:
		if v == nil {
			return nil, false
		}
		return subscriptionFields(*v)
	case json.RawMessage:
		return subscriptionFields(models.FieldFromRaw(v))
	case map[string]interface{}:
		return v, true
	case []interface{}:
		return map[string]interface{}{}, true
	case string, json.Number, bool, float64, float32, int, int64, int32, uint, uint64:
		return nil, false
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, false
		}
		field := models.FieldFromRaw(data)
		if raw := field.Raw(); len(raw) == 0 || (raw[0] != '{' && raw[0] != '[') {
			return nil, false
		}
		return subscriptionFields(field)
	}
}

// cleanMultiple reads one subscription category. Numbers pass through, strings
// lose any "x", comma and whitespace characters before parsing, everything else is 0.
func cleanMultiple(value interface{}) float64 {
	switch v := value.(type) {
	case json.Number:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0
		}
		return f
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		stripped := strings.Map(func(r rune) rune {
			if r == 'x' || r == 'X' || r == ',' || unicode.IsSpace(r) {
				return -1
			}
			return r
		}, v)
		f, ok := parseLeadingFloat(stripped)
		if !ok {
			return 0
		}
		return f
	default:
		return 0
	}
}

// parseLeadingFloat parses the longest numeric prefix of s, ignoring leading whitespace
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	match := leadingDecimalRegex.FindString(s)
	if match == "" {
		return 0, false
	}

	switch strings.TrimLeft(match, "+-") {
	case "Infinity":
		if strings.HasPrefix(match, "-") {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// formatFixed rounds the exact binary value of f to the given decimals,
// breaking ties away from zero the way a browser's toFixed does
func formatFixed(f float64, decimals int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return formatJSNumber(f)
	}
	return new(big.Rat).SetFloat64(f).FloatString(decimals)
}

// ListingGain is the gain/loss classification of a closed IPO
type ListingGain struct {
	Label    string  `json:"label"`
	Percent  float64 `json:"percent"`
	IsProfit bool    `json:"is_profit"`
}

// ClassifyListingGain reads a listing gain label such as "58%" or "-2%".
// Unreadable values count as a 0% gain, which is classified as a profit.
func ClassifyListingGain(value interface{}) ListingGain {
	label := RenderSafe(value)
	percent, ok := parseLeadingFloat(strings.Replace(label, "%", "", 1))
	if !ok || math.IsNaN(percent) {
		percent = 0
	}

	return ListingGain{
		Label:    label,
		Percent:  percent,
		IsProfit: percent >= 0,
	}
}
