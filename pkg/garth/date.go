package garth

import (
	"fmt"
	"strings"
	"time"
)

// Date is a custom type that handles the date and timestamp formats the
// Connect API mixes freely (date-only, RFC3339, and fractional-second GMT
// timestamps without a zone).
type Date struct {
	time.Time
}

var dateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// UnmarshalJSON implements json.Unmarshaler for Date
func (d *Date) UnmarshalJSON(data []byte) error {
	// Remove quotes
	str := strings.Trim(string(data), `"`)

	// Handle null/empty
	if str == "" || str == "null" {
		d.Time = time.Time{}
		return nil
	}

	for _, format := range dateFormats {
		t, err := time.Parse(format, str)
		if err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("unable to parse date: %s", str)
}

// MarshalJSON implements json.Marshaler for Date
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, d.String())), nil
}

// String renders date-only values as YYYY-MM-DD and anything with a clock
// component as a full timestamp.
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	h, m, s := d.Time.Clock()
	if h == 0 && m == 0 && s == 0 && d.Time.Nanosecond() == 0 {
		return d.Time.Format("2006-01-02")
	}
	return d.Time.Format("2006-01-02T15:04:05")
}

// formatDate renders a time in the path form the Connect API expects.
func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
