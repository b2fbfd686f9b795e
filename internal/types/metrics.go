// Package types provides type definitions for structured data used throughout the ats-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MetricKind describes how a metric value is formatted
type MetricKind string

// Metric kinds
const (
	MetricPercentage MetricKind = "percentage"
	MetricCount      MetricKind = "count"
	MetricCurrency   MetricKind = "currency"
	MetricDuration   MetricKind = "duration"
	MetricText       MetricKind = "text"
)

// Metric is a typed achievement metric
type Metric struct {
	Kind  MetricKind `json:"kind"`
	Value float64    `json:"value,omitempty"`
	Text  string     `json:"text,omitempty"`
}

// Metrics maps metric keys to typed values.
// In profile JSON each value may be a bare number or string; the kind is inferred from the key and value.
type Metrics map[string]Metric

// key fragments that hint at the metric kind for bare numbers
var (
	percentKeyHints  = []string{"percent", "pct", "reduced", "reduction", "improvement", "increase", "rate", "roi", "score"}
	currencyKeyHints = []string{"cost", "saving", "revenue", "budget", "dollar", "usd", "spend"}
	durationKeyHints = []string{"time", "hours", "duration", "days", "weeks", "minutes"}
	durationUnits    = []string{"hours", "hour", "hrs", "days", "day", "weeks", "week", "minutes", "mins", "months"}
)

// UnmarshalJSON accepts either typed metric objects or bare values
func (m *Metrics) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Metrics, len(raw))
	for key, value := range raw {
		var typed Metric
		if err := json.Unmarshal(value, &typed); err == nil && typed.Kind != "" {
			out[key] = typed
			continue
		}

		var bare any
		if err := json.Unmarshal(value, &bare); err != nil {
			return fmt.Errorf("metric %q: %w", key, err)
		}
		out[key] = ParseMetric(key, bare)
	}
	*m = out
	return nil
}

// ParseMetric infers a typed metric from a key and a bare JSON value
func ParseMetric(key string, raw any) Metric {
	keyLower := strings.ToLower(key)

	switch v := raw.(type) {
	case float64:
		return metricFromNumber(keyLower, v)
	case int:
		return metricFromNumber(keyLower, float64(v))
	case string:
		return metricFromString(keyLower, v)
	case nil:
		return Metric{Kind: MetricText}
	default:
		return Metric{Kind: MetricText, Text: fmt.Sprint(v)}
	}
}

func metricFromNumber(keyLower string, v float64) Metric {
	switch {
	case containsAny(keyLower, currencyKeyHints):
		return Metric{Kind: MetricCurrency, Value: v}
	case containsAny(keyLower, percentKeyHints):
		// fractions are treated as ratios, e.g. 0.4 -> 40%
		if v > 0 && v < 1 {
			v = math.Round(v * 100)
		}
		return Metric{Kind: MetricPercentage, Value: v}
	case containsAny(keyLower, durationKeyHints):
		return Metric{Kind: MetricDuration, Value: v}
	default:
		return Metric{Kind: MetricCount, Value: v}
	}
}

func metricFromString(keyLower, s string) Metric {
	s = strings.TrimSpace(s)
	if s == "" {
		return Metric{Kind: MetricText}
	}

	if strings.HasSuffix(s, "%") {
		if v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64); err == nil {
			return Metric{Kind: MetricPercentage, Value: v}
		}
		return Metric{Kind: MetricText, Text: s}
	}

	if strings.HasPrefix(s, "$") {
		if v, ok := parseCurrency(s); ok {
			return Metric{Kind: MetricCurrency, Value: v}
		}
		return Metric{Kind: MetricText, Text: s}
	}

	lower := strings.ToLower(s)
	for _, unit := range durationUnits {
		if strings.HasSuffix(lower, " "+unit) || strings.HasSuffix(lower, unit) && lower != unit && isDigitByte(lower[0]) {
			return Metric{Kind: MetricDuration, Text: s}
		}
	}

	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
		return metricFromNumber(keyLower, v)
	}

	return Metric{Kind: MetricText, Text: s}
}

// parseCurrency parses "$50,000", "$1.2M" or "$40k"
func parseCurrency(s string) (float64, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	s = strings.ReplaceAll(s, ",", "")
	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "k"), strings.HasSuffix(s, "K"):
		multiplier = 1e3
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "m"), strings.HasSuffix(s, "M"):
		multiplier = 1e6
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "b"), strings.HasSuffix(s, "B"):
		multiplier = 1e9
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v * multiplier, true
}

// String renders the metric for use inside a resume bullet
func (m Metric) String() string {
	switch m.Kind {
	case MetricPercentage:
		if m.Text != "" {
			return m.Text
		}
		return formatNumber(m.Value) + "%"
	case MetricCount:
		if m.Text != "" {
			return m.Text
		}
		return formatNumber(m.Value)
	case MetricCurrency:
		if m.Text != "" {
			return m.Text
		}
		return "$" + groupThousands(int64(math.Round(m.Value)))
	case MetricDuration:
		if m.Text != "" {
			return m.Text
		}
		return formatNumber(m.Value) + " hours"
	default:
		return m.Text
	}
}

// IsZero reports whether the metric carries nothing printable
func (m Metric) IsZero() bool {
	return m.String() == ""
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func groupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	return sign + sb.String()
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
