package cmd

import (
	"fmt"
	"strings"

	"github.com/s0up4200/swire/filter"
)

// FormatOptions controls how number listings are rendered
type FormatOptions struct {
	ShowDetails bool
}

// ConsoleFormatter renders number listings for the terminal
type ConsoleFormatter struct{}

// FormatNumberList formats numbers as a table, or as a tree with one block
// per number when details are requested
func (f ConsoleFormatter) FormatNumberList(numbers []filter.Number, options FormatOptions) string {
	if len(numbers) == 0 {
		return "No numbers found matching the criteria.\n"
	}

	var sb strings.Builder

	numberText := "number"
	if len(numbers) != 1 {
		numberText = "numbers"
	}
	fmt.Fprintf(&sb, "Found %d %s:\n", len(numbers), numberText)

	if !options.ShowDetails {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		fmt.Fprintf(&sb, "%-16s %-28s %-16s %s\n", "NUMBER", "NAME", "LOCATION", "CAPABILITIES")
		for _, n := range numbers {
			fmt.Fprintf(&sb, "%-16s %-28s %-16s %s\n", n.Number, truncate(n.Name, 28), location(n), strings.Join(n.Capabilities, ","))
		}
		return sb.String()
	}

	sb.WriteString("\n")
	for i, n := range numbers {
		isLast := i == len(numbers)-1
		f.formatNumber(&sb, n, isLast)
		if !isLast {
			sb.WriteString("\u2502\n")
		}
	}
	return sb.String()
}

// formatNumber formats a single number entry
func (f ConsoleFormatter) formatNumber(sb *strings.Builder, n filter.Number, isLast bool) {
	prefix := "\u251c"
	indent := "\u2502   "
	if isLast {
		prefix = "\u2570"
		indent = "    "
	}

	fmt.Fprintf(sb, "%s\u2500\u2500 %s", prefix, n.Number)
	if n.Name != "" && n.Name != n.Number {
		fmt.Fprintf(sb, " (%s)", n.Name)
	}
	sb.WriteString("\n")

	if n.ID != "" {
		fmt.Fprintf(sb, "%sID: %s\n", indent, n.ID)
	}
	if loc := location(n); loc != "" {
		fmt.Fprintf(sb, "%sLocation: %s\n", indent, loc)
	}
	if n.Lata != "" || n.PostalCode != "" {
		fmt.Fprintf(sb, "%sLATA: %s  Postal code: %s\n", indent, orDash(n.Lata), orDash(n.PostalCode))
	}
	if len(n.Capabilities) > 0 {
		fmt.Fprintf(sb, "%sCapabilities: %s\n", indent, strings.Join(n.Capabilities, ", "))
	}
	if n.NumberType != "" {
		fmt.Fprintf(sb, "%sType: %s\n", indent, n.NumberType)
	}
	if n.Beta {
		fmt.Fprintf(sb, "%sBeta\n", indent)
	}
	if !n.CreatedAt.IsZero() {
		fmt.Fprintf(sb, "%sCreated: %s\n", indent, n.CreatedAt.Format("2006-01-02"))
	}
}

func location(n filter.Number) string {
	return strings.TrimSpace(strings.Join([]string{n.RateCenter, n.Region, n.IsoCountry}, " "))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, width int) string {
	if len(s) > width {
		return s[:width-3] + "..."
	}
	return s
}
