package webhook

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts covers the forms GitHub is known to emit: RFC3339 with a
// "Z" or numeric offset, optionally fractional seconds, or a bare local-less
// instant which is treated as already UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// canonicalUTC converts a GitHub timestamp string into the strict stored
// form: UTC, second precision, trailing "Z" (never a numeric offset).
// Idempotent on already-canonical input.
func canonicalUTC(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return t.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z07:00"), nil
	}

	return "", fmt.Errorf("unparseable timestamp %q", raw)
}
