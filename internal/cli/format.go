package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/calebreed/agencybook/internal/property"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPropertySummary prints a single property summary in text format.
func printPropertySummary(p *property.Property) {
	addr := p.Address()

	fmt.Printf("Property %s\n", p.ID())
	if addr.Unit() != "" {
		fmt.Printf("  Unit:     %s\n", addr.Unit())
	}
	fmt.Printf("  Address:  %d %s, %s %s\n", addr.StreetNumber(), addr.StreetName(), addr.City(), addr.PostalCode())
	fmt.Printf("  Price:    $%s\n", formatPrice(int64(p.Price())))
	fmt.Printf("  Beds:     %d\n", p.Bedrooms())
	fmt.Printf("  Pool:     %s\n", yesNo(p.HasPool()))
	fmt.Printf("  Type:     %s\n", p.Type().Label())
}

// printPropertyTable prints a list of properties as a formatted table.
func printPropertyTable(props []*property.Property) error {
	if len(props) == 0 {
		fmt.Println("No properties found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tADDRESS\tPRICE\tBED\tPOOL\tTYPE"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t-------\t-----\t---\t----\t----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, p := range props {
		addr := p.Address()
		line := fmt.Sprintf("%d %s, %s", addr.StreetNumber(), addr.StreetName(), addr.City())
		if _, err := fmt.Fprintf(w, "%s\t%s\t$%s\t%d\t%s\t%s\n",
			p.ID(), truncate(line, 40), formatPrice(int64(p.Price())),
			p.Bedrooms(), yesNo(p.HasPool()), p.Type()); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d properties\n", len(props))
	return nil
}

// printAddressList prints addresses in text format, one per line.
func printAddressList(addrs []*property.Address) {
	if len(addrs) == 0 {
		fmt.Println("No addresses found.")
		return
	}

	for _, a := range addrs {
		if a.Unit() != "" {
			fmt.Printf("unit #%s, ", a.Unit())
		}
		fmt.Printf("%d %s, %s %s\n", a.StreetNumber(), a.StreetName(), a.City(), a.PostalCode())
	}
}

// formatPrice formats a dollar amount as a string with commas.
func formatPrice(dollars int64) string {
	s := fmt.Sprintf("%d", dollars)

	// Add commas
	if len(s) <= 3 {
		return s
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	return strings.Join(parts, ",")
}

// yesNo renders a boolean flag for table output.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
