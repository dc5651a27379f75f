package priceindicator

import (
	"strconv"
	"strings"
)

// DashStyle names follow the Highcharts dash style names.
type DashStyle string

const (
	DashStyleSolid           DashStyle = "Solid"
	DashStyleShortDash       DashStyle = "ShortDash"
	DashStyleShortDot        DashStyle = "ShortDot"
	DashStyleShortDashDot    DashStyle = "ShortDashDot"
	DashStyleShortDashDotDot DashStyle = "ShortDashDotDot"
	DashStyleDot             DashStyle = "Dot"
	DashStyleDash            DashStyle = "Dash"
	DashStyleLongDash        DashStyle = "LongDash"
	DashStyleDashDot         DashStyle = "DashDot"
	DashStyleLongDashDot     DashStyle = "LongDashDot"
	DashStyleLongDashDotDot  DashStyle = "LongDashDotDot"
)

const dashPatternNone = "none"

type dashRule struct {
	pattern     string
	replacement string
	all         bool
}

// dashRules are applied in order. Shorter patterns are substrings of the
// longer ones, so the longer ones must be consumed first.
var dashRules = []dashRule{
	{pattern: "shortdashdotdot", replacement: "3,1,1,1,1,1,"},
	{pattern: "shortdashdot", replacement: "3,1,1,1,"},
	{pattern: "shortdot", replacement: "1,1,"},
	{pattern: "shortdash", replacement: "3,1,"},
	{pattern: "longdash", replacement: "8,3,"},
	{pattern: "dot", replacement: "1,3,", all: true},
	{pattern: "dash", replacement: "4,3,"},
}

// EncodeDashStyle converts a dash style name into a stroke-dasharray value
// scaled by the stroke width. Unknown names are not validated and pass
// through the substitution untouched.
func EncodeDashStyle(dashStyle string, width float64) string {
	dashStyle = strings.ToLower(dashStyle)
	if width == 0 {
		width = 1
	}

	if dashStyle == "solid" {
		return dashPatternNone
	}

	if dashStyle == "" {
		return ""
	}

	value := dashStyle
	for _, rule := range dashRules {
		n := 1
		if rule.all {
			n = -1
		}
		value = strings.Replace(value, rule.pattern, rule.replacement, n)
	}

	value = strings.TrimSuffix(value, ",")

	tokens := strings.Split(value, ",")
	for i, token := range tokens {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		tokens[i] = strconv.FormatFloat(v*width, 'f', -1, 64)
	}

	return strings.Join(tokens, ",")
}

// DashArray parses an encoded pattern into dash lengths. It returns nil for
// "none", empty or degenerate patterns.
func DashArray(pattern string) []float64 {
	if pattern == "" || pattern == dashPatternNone {
		return nil
	}

	var dashes []float64
	for _, token := range strings.Split(pattern, ",") {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil
		}
		dashes = append(dashes, v)
	}
	return dashes
}
