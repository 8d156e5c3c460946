// Package render formats records and profiles for terminal output.
package render

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/hitekdb/deeplink/internal/types"
)

const placeholder = "N/A"

// labelWidth aligns the value column across card lines.
const labelWidth = 9

var delimiterRuns = regexp.MustCompile(`[,\s]{2,}`)

// CleanAddress strips delimiter noise from the free-text address field.
// The dataset stores "!" and "!!" as field separators inside addresses.
func CleanAddress(raw string) string {
	addr := strings.TrimSpace(raw)
	if addr == "" {
		return placeholder
	}
	addr = strings.ReplaceAll(addr, "!!", ", ")
	addr = strings.ReplaceAll(addr, "!", ", ")
	addr = strings.TrimLeft(addr, ", ")
	addr = delimiterRuns.ReplaceAllString(addr, ", ")
	addr = strings.TrimRight(addr, ", ")
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return placeholder
	}
	return addr
}

// orNA substitutes the display placeholder for empty and sentinel values.
func orNA(s string) string {
	s = strings.TrimSpace(s)
	if types.IsSentinel(s) {
		return placeholder
	}
	return s
}

func cardLine(label, value string) string {
	return fmt.Sprintf("| %s %s\n", color.Gray.Sprint(runewidth.FillRight(label+":", labelWidth)), value)
}

// RecordCard formats a single record as a bordered data card.
// Index and total are 1-based; pass 0,0 to omit the record header.
func RecordCard(rec types.Record, index, total int) string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("-", 38) + "\n")
	if index > 0 {
		b.WriteString(fmt.Sprintf("| %s\n", color.Bold.Sprintf("Record %d/%d", index, total)))
	}
	b.WriteString(cardLine("Mobile", color.Cyan.Sprint(orNA(rec.Mobile))))
	b.WriteString(cardLine("Name", orNA(rec.Name)))
	b.WriteString(cardLine("Father", orNA(rec.FatherName)))
	if email := orNA(rec.Email); email != placeholder {
		b.WriteString(cardLine("Email", email))
	}
	b.WriteString(cardLine("Address", CleanAddress(rec.Address)))
	b.WriteString(cardLine("Circle", orNA(rec.Circle)))
	b.WriteString(cardLine("Operator", orNA(rec.OperatorID)))
	if alt := orNA(rec.AltMobile); alt != placeholder {
		b.WriteString(cardLine("Alt", color.Cyan.Sprint(alt)))
	}
	b.WriteString("+" + strings.Repeat("-", 38))

	return b.String()
}

// RecordList formats a full result set with a header and summary footer.
func RecordList(records []types.Record, query, method string, elapsed time.Duration) string {
	if len(records) == 0 {
		return fmt.Sprintf("%s\n  Query:  %s\n  Method: %s\n  Time:   %s\n",
			color.Red.Sprint("No records found"),
			color.Cyan.Sprint(query), method, elapsed.Round(time.Millisecond))
	}

	var b strings.Builder
	b.WriteString(color.Green.Sprintf("%d record(s) found\n", len(records)))
	b.WriteString(fmt.Sprintf("  Query:  %s\n  Method: %s\n  Time:   %s\n\n",
		color.Cyan.Sprint(query), method, elapsed.Round(time.Millisecond)))

	for i, rec := range records {
		b.WriteString(RecordCard(rec, i+1, len(records)))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// ProfileReport formats a consolidated deep-search profile.
func ProfileReport(p *types.Profile, stats types.SearchStats) string {
	var b strings.Builder

	b.WriteString(color.Bold.Sprintf("Deep search: %s\n", p.Seed))
	if !p.Found {
		b.WriteString(color.Red.Sprint("No records found\n"))
		b.WriteString(fmt.Sprintf("  Queries: %d | Levels: %d | Time: %s\n",
			stats.QueriesRun, stats.Levels, stats.Duration.Round(time.Millisecond)))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  Records: %d | Phones: %d | Queries: %d | Levels: %d | Time: %s\n",
		p.TotalRecords, p.TotalPhones, stats.QueriesRun, stats.Levels,
		stats.Duration.Round(time.Millisecond)))

	writeSection(&b, "Phones", p.Phones, func(v string) string { return color.Cyan.Sprint(v) })
	writeSection(&b, "Names", p.Names, nil)
	writeSection(&b, "Father names", p.FatherNames, nil)
	writeSection(&b, "Emails", p.Emails, nil)
	writeSection(&b, "Addresses", p.Addresses, CleanAddress)
	writeSection(&b, "Circles", p.Circles, nil)
	writeSection(&b, "Operator IDs", p.OperatorIDs, nil)

	return b.String()
}

func writeSection(b *strings.Builder, title string, values []string, decorate func(string) string) {
	if len(values) == 0 {
		return
	}
	b.WriteString("\n" + color.Bold.Sprint(title+":") + "\n")
	for _, v := range values {
		if decorate != nil {
			v = decorate(v)
		}
		b.WriteString("  - " + v + "\n")
	}
}

// DatasetInfo formats the dbstats output.
func DatasetInfo(path string, rowCount, sizeBytes int64) string {
	var b strings.Builder
	b.WriteString(color.Bold.Sprint("Dataset info\n"))
	b.WriteString(fmt.Sprintf("  %s %s\n", runewidth.FillRight("Path:", labelWidth), path))
	b.WriteString(fmt.Sprintf("  %s %d\n", runewidth.FillRight("Rows:", labelWidth), rowCount))
	b.WriteString(fmt.Sprintf("  %s %s\n", runewidth.FillRight("Size:", labelWidth), HumanBytes(sizeBytes)))
	b.WriteString(fmt.Sprintf("  %s WAL, read-only\n", runewidth.FillRight("Mode:", labelWidth)))
	return b.String()
}

// HumanBytes formats a byte count with a binary unit suffix.
func HumanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
