// Package search maintains a local full-text index over reconciled
// messages so the UI can search the session's history without a backend
// round trip.
package search

import (
	"strconv"
	"strings"
)

// Query decouples the raw user input from the index engine requirements.
type Query struct {
	RawInput       string
	Terms          string
	ConversationID string
	Limit          int
}

// ParseQuery extracts command-line style arguments from a raw string.
// Example: /find invoice --conv 12 --limit 5
func ParseQuery(input string) Query {
	query := Query{
		RawInput: input,
		Limit:    10,
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]
			switch key {
			case "conv":
				query.ConversationID = val
			case "limit":
				if n, err := strconv.Atoi(val); err == nil && n > 0 {
					query.Limit = n
				}
			}
			i++
			continue
		}

		if !strings.HasPrefix(part, "/") {
			textTerms = append(textTerms, part)
		}
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}
