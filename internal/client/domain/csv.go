package domain

import "strings"

// ParseCSV splits a client CSV blob into (name, email) pairs: one client per
// line, name then email in the first two comma fields, both required
// non-empty after trimming. Malformed rows are skipped silently. Source
// ordering is preserved for selection-list display.
//
// The format supports no quoting or escaping; a name or email containing a
// comma corrupts that row. Known limitation, kept for compatibility with the
// files operators already have.
func ParseCSV(text string) []Client {
	lines := strings.Split(text, "\n")
	clients := make([]Client, 0, len(lines))

	for _, line := range lines {
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			continue
		}
		name := strings.TrimSpace(fields[0])
		email := strings.TrimSpace(fields[1])
		if name == "" || email == "" {
			continue
		}
		clients = append(clients, Client{Name: name, Email: email})
	}

	return clients
}

// ExportCSV serializes the list back to the same name,email line format.
func ExportCSV(clients []Client) string {
	var b strings.Builder
	for _, c := range clients {
		b.WriteString(c.Name)
		b.WriteString(",")
		b.WriteString(c.Email)
		b.WriteString("\n")
	}
	return b.String()
}
