package impact

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/ats-tailor/internal/types"
)

// FormatMetric renders a bare value as the given metric kind for display in a bullet.
// Fractional percentages are treated as ratios (0.4 -> "40%"); strings that already carry
// a unit are returned unchanged.
func FormatMetric(value any, kind types.MetricKind) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return formatString(strings.TrimSpace(v), kind)
	case int:
		return formatNumber(float64(v), kind)
	case int64:
		return formatNumber(float64(v), kind)
	case float64:
		if kind == types.MetricPercentage && v > 0 && v < 1 {
			v = math.Round(v * 100)
		}
		return formatNumber(v, kind)
	default:
		return fmt.Sprint(v)
	}
}

func formatNumber(v float64, kind types.MetricKind) string {
	if kind == types.MetricText {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return types.Metric{Kind: kind, Value: v}.String()
}

func formatString(s string, kind types.MetricKind) string {
	if s == "" {
		return ""
	}
	switch kind {
	case types.MetricPercentage:
		if strings.HasSuffix(s, "%") {
			return s
		}
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return s + "%"
		}
	case types.MetricCurrency:
		if strings.HasPrefix(s, "$") {
			return s
		}
		if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
			return formatNumber(v, kind)
		}
	case types.MetricDuration:
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return formatNumber(v, kind)
		}
	}
	return s
}
