package agency

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/calebreed/agencybook/internal/property"
)

// TypeReport returns the formatted listing report for the given
// residence type (matched case-insensitively). With matches, the first
// line is a header naming the type in upper case and each following
// line describes one property, numbered from 1 in identifier order.
// With no matches the report is exactly two lines: the header and
// "<none found>".
func (a *Agency) TypeReport(residenceType string) []string {
	header := "Type: " + strings.ToUpper(residenceType)

	matches := a.OfType(property.ResidenceType(strings.ToLower(residenceType)))
	if len(matches) == 0 {
		return []string{header, "<none found>"}
	}

	lines := make([]string, 0, len(matches)+1)
	lines = append(lines, header+"\n")
	for i, p := range matches {
		lines = append(lines, formatProperty(p, i+1))
	}
	return lines
}

// formatProperty renders one report line, e.g.
// "2) Property P7: unit #3b at 45 Oak Ave 90210 in Los Angeles (1 bedroom plus pool): $749999.\n"
func formatProperty(p *property.Property, n int) string {
	var sb strings.Builder
	addr := p.Address()

	sb.WriteString(strconv.Itoa(n))
	sb.WriteString(") Property ")
	sb.WriteString(strings.ToUpper(p.ID()))
	sb.WriteString(": ")

	if strings.TrimSpace(addr.Unit()) != "" {
		sb.WriteString("unit #")
		sb.WriteString(addr.Unit())
		sb.WriteString(" at ")
	}

	sb.WriteString(strconv.Itoa(addr.StreetNumber()))
	sb.WriteString(" ")
	sb.WriteString(titleCase(addr.StreetName()))
	sb.WriteString(" ")
	sb.WriteString(strings.ToUpper(addr.PostalCode()))
	sb.WriteString(" in ")
	sb.WriteString(titleCase(addr.City()))
	sb.WriteString(" (")
	sb.WriteString(strconv.Itoa(p.Bedrooms()))
	if p.Bedrooms() == 1 {
		sb.WriteString(" bedroom")
	} else {
		sb.WriteString(" bedrooms")
	}
	if p.HasPool() {
		sb.WriteString(" plus pool")
	}
	sb.WriteString("): $")
	// Truncated, not rounded.
	sb.WriteString(strconv.Itoa(int(p.Price())))
	sb.WriteString(".\n")

	return sb.String()
}

// titleCase capitalizes the first letter of each whitespace-separated
// word and lowercases the rest. Each whitespace rune becomes a single
// space.
func titleCase(s string) string {
	var sb strings.Builder
	capitalizeNext := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			sb.WriteRune(' ')
			capitalizeNext = true
		case capitalizeNext:
			sb.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		default:
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}
