package detection

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// MatchRecords filters records to those connecting the two countries.
//
// When both the left and right column resolved, a record matches if its
// pair of values equals the country pair in either orientation, so the
// result is identical when the two countries are swapped. When either
// column is missing the structured path is abandoned entirely and the
// fallback scans the full text of each record for both country names.
//
// An empty result is a valid outcome, not an error.
func MatchRecords(records []Record, country1, country2, leftField, rightField string) []Record {
	if leftField == "" || rightField == "" {
		return matchByFullText(records, country1, country2)
	}

	return lo.Filter(records, func(r Record, _ int) bool {
		left := stringValue(r.Fields[leftField])
		right := stringValue(r.Fields[rightField])

		return (strings.EqualFold(left, country1) && strings.EqualFold(right, country2)) ||
			(strings.EqualFold(left, country2) && strings.EqualFold(right, country1))
	})
}

func matchByFullText(records []Record, country1, country2 string) []Record {
	c1 := strings.ToLower(country1)
	c2 := strings.ToLower(country2)

	return lo.Filter(records, func(r Record, _ int) bool {
		text := strings.ToLower(recordToText(r))
		return strings.Contains(text, c1) && strings.Contains(text, c2)
	})
}

// recordToText concatenates the stringified values of every non-null
// attribute into one blob for the fallback scan. Geometry is not an
// attribute and does not participate.
func recordToText(r Record) string {
	sb := strings.Builder{}

	for _, v := range r.Fields {
		if v == nil {
			continue
		}

		sb.WriteString(stringValue(v))
		sb.WriteString(" ")
	}

	return sb.String()
}

func stringValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprintf("%v", value)
	}
}
