package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Queue is the ordered, fixed-for-the-session list of contacts to call.
type Queue struct {
	IDs      []string
	Contacts map[string]Contact
}

// Len returns the number of contacts in the queue.
func (q Queue) Len() int {
	return len(q.IDs)
}

// Contact returns the contact for a queue id, or nil.
func (q Queue) Contact(id string) Contact {
	return q.Contacts[id]
}

// ContactID derives the identifier of a contact from its natural key, or
// from its name and position when it has none. Synthesised ids are only as
// stable as the order of the dataset.
func ContactID(c Contact, idx int) string {
	if key := c.NaturalKey(); key != "" {
		return key
	}
	return fmt.Sprintf("%s-%s-%d", c.String("first_name"), c.String("last_name"), idx)
}

// BuildQueue filters contacts with the campaign filters, restricts them to
// the campaign allow-list when one is set and assigns ids. The input
// order of contacts is preserved.
func BuildQueue(contacts []Contact, campaign Campaign) Queue {
	filtered := ApplyFilters(contacts, campaign.Filters)

	if len(campaign.StudentIDs) > 0 {
		allowed := make(map[string]struct{}, len(campaign.StudentIDs))
		for _, id := range campaign.StudentIDs {
			allowed[id] = struct{}{}
		}
		kept := filtered[:0:0]
		for i, c := range filtered {
			_, byKey := allowed[c.NaturalKey()]
			_, byID := allowed[ContactID(c, i)]
			if byKey || byID {
				kept = append(kept, c)
			}
		}
		filtered = kept
	}

	q := Queue{
		IDs:      make([]string, 0, len(filtered)),
		Contacts: make(map[string]Contact, len(filtered)),
	}
	for i, c := range filtered {
		id := ContactID(c, i)
		q.IDs = append(q.IDs, id)
		q.Contacts[id] = c
	}
	return q
}

// ApplyFilters returns the contacts matching every filter, in order.
func ApplyFilters(contacts []Contact, filters []Filter) []Contact {
	out := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if Matches(c, filters) {
			out = append(out, c)
		}
	}
	return out
}

// Matches reports whether a contact satisfies all filters.
func Matches(c Contact, filters []Filter) bool {
	for _, f := range filters {
		if !matchFilter(c, f) {
			return false
		}
	}
	return true
}

func matchFilter(c Contact, f Filter) bool {
	field := c.String(f.Field)
	switch f.Op {
	case OpContains:
		return strings.Contains(strings.ToLower(field), strings.ToLower(f.Value))
	case OpGt, OpGte, OpLt, OpLte:
		if !c.Has(f.Field) {
			return false
		}
		a, okA := parseNumber(field)
		b, okB := parseNumber(f.Value)
		if !okA || !okB {
			return false
		}
		switch f.Op {
		case OpGt:
			return a > b
		case OpGte:
			return a >= b
		case OpLt:
			return a < b
		default:
			return a <= b
		}
	default:
		return strings.EqualFold(field, f.Value)
	}
}

// parseNumber treats blank input as zero.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
