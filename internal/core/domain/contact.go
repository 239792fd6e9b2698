package domain

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Contact is a single row of the student dataset. Source spreadsheets use
// inconsistent column names, so fields are kept as a loose map. Values are
// restricted to string, float64 or nil; use NormalizeContact when building
// a Contact from decoded JSON.
type Contact map[string]any

// Well-known field aliases, tried in order.
var (
	PhoneFields    = []string{"Mobile Phone*", "Mobile Number*", "mobile_phone", "mobile", "phone_number", "phone", "Cell Phone", "Student Phone"}
	EmailFields    = []string{"Student Email", "Email", "email", "camper_email", "Camper Email*", "Primary Email", "Student Email Address"}
	GradYearFields = []string{"High School Graduation Year*", "high_school_graduation_year", "High School Graduation Year", "Graduation Year", "HS Grad Year", "Grad Year", "graduation_year", "grad_year"}
	NameFields     = []string{"full_name", "fullName", "Full Name*", "name"}

	// NaturalKeyFields are the columns that may carry a stable identifier.
	NaturalKeyFields = []string{"id", "student_id", "uuid"}
)

var phoneKeyPattern = regexp.MustCompile(`(?i)phone|mobile|cell`)

// NormalizeContact converts a decoded JSON object into a Contact. Booleans
// become "true"/"false", integers become float64 and nested values are
// dropped.
func NormalizeContact(raw map[string]any) Contact {
	c := make(Contact, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case nil:
			c[k] = nil
		case string:
			c[k] = t
		case float64:
			c[k] = t
		case float32:
			c[k] = float64(t)
		case int:
			c[k] = float64(t)
		case int64:
			c[k] = float64(t)
		case bool:
			c[k] = strconv.FormatBool(t)
		}
	}
	return c
}

// String returns the field formatted as text. Missing and nil fields yield
// an empty string.
func (c Contact) String(field string) string {
	return formatValue(c[field])
}

// Has reports whether the field exists and is not nil.
func (c Contact) Has(field string) bool {
	v, ok := c[field]
	return ok && v != nil
}

// NaturalKey returns the first non-empty natural key column.
func (c Contact) NaturalKey() string {
	for _, f := range NaturalKeyFields {
		if v := strings.TrimSpace(c.String(f)); v != "" {
			return v
		}
	}
	return ""
}

// Lookup finds the first alias with a non-empty value. Aliases are first
// compared to keys case-insensitively, then as case-insensitive
// substrings of keys. It returns the matching key and its trimmed value.
func (c Contact) Lookup(aliases []string) (string, string, bool) {
	keys := c.sortedKeys()
	for _, alias := range aliases {
		for _, k := range keys {
			if strings.EqualFold(k, alias) {
				if v := strings.TrimSpace(c.String(k)); v != "" {
					return k, v, true
				}
			}
		}
	}
	for _, alias := range aliases {
		a := strings.ToLower(alias)
		for _, k := range keys {
			if strings.Contains(strings.ToLower(k), a) {
				if v := strings.TrimSpace(c.String(k)); v != "" {
					return k, v, true
				}
			}
		}
	}
	return "", "", false
}

// Phone returns the best-effort phone number of the contact.
func (c Contact) Phone() string {
	if _, v, ok := c.Lookup(PhoneFields); ok {
		return v
	}
	for _, k := range c.sortedKeys() {
		if phoneKeyPattern.MatchString(k) {
			if v := strings.TrimSpace(c.String(k)); v != "" {
				return v
			}
		}
	}
	return ""
}

// Email returns the best-effort email address of the contact.
func (c Contact) Email() string {
	_, v, _ := c.Lookup(EmailFields)
	return v
}

// GradYear returns the best-effort graduation year of the contact.
func (c Contact) GradYear() string {
	_, v, _ := c.Lookup(GradYearFields)
	return v
}

// FullName returns the display name, falling back to first and last name.
func (c Contact) FullName() string {
	for _, f := range NameFields {
		if v := strings.TrimSpace(c.String(f)); v != "" {
			return v
		}
	}
	first := strings.TrimSpace(c.String("first_name"))
	last := strings.TrimSpace(c.String("last_name"))
	return strings.TrimSpace(first + " " + last)
}

// sortedKeys keeps alias resolution deterministic; map order is random.
func (c Contact) sortedKeys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
