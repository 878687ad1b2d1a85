package order

import (
	"strconv"
	"strings"
)

// FormatAddress joins the address parts with ", ", skipping empty ones.
func FormatAddress(o NormalizedOrder) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{o.AddressLine1, o.AddressLine2, o.Postcode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// FormatItems renders one "- <name>[ (<size>)] x <qty>" line per item.
func FormatItems(o NormalizedOrder) string {
	lines := make([]string, len(o.Items))
	for i, item := range o.Items {
		lines[i] = formatItem(item)
	}
	return strings.Join(lines, "\n")
}

func formatItem(item Item) string {
	var b strings.Builder
	b.WriteString("- ")
	b.WriteString(item.Name)
	if item.Size != "" {
		b.WriteString(" (")
		b.WriteString(item.Size)
		b.WriteString(")")
	}
	b.WriteString(" x ")
	b.WriteString(strconv.Itoa(item.Qty))
	return b.String()
}
