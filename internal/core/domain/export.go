package domain

import (
	"sort"
	"time"
)

// ExportKind names a report row set.
type ExportKind string

const (
	ExportSurvey    ExportKind = "survey"
	ExportOutcomes  ExportKind = "outcomes"
	ExportNotCalled ExportKind = "not-called"
)

// ParseExportKind reports whether s names a known row set.
func ParseExportKind(s string) (ExportKind, bool) {
	switch k := ExportKind(s); k {
	case ExportSurvey, ExportOutcomes, ExportNotCalled:
		return k, true
	}
	return "", false
}

// SurveyExportRow is one recorded survey answer.
type SurveyExportRow struct {
	ContactID string    `json:"contactId"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}

// OutcomeExportRow is the latest call outcome of one contact. Outcome is
// empty for contacts with only survey or note activity.
type OutcomeExportRow struct {
	ContactID string    `json:"contactId"`
	Outcome   Outcome   `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}

// NotCalledRow is a queued contact that was never attempted.
type NotCalledRow struct {
	ContactID string `json:"contactId"`
	FullName  string `json:"full_name"`
}

// SurveyExportRows returns one row per survey log entry, by contact id and
// then in log order. A contact with an answer but no logs contributes one
// row stamped with its last call time.
func SurveyExportRows(p Snapshot) []SurveyExportRow {
	out := make([]SurveyExportRow, 0)
	for _, id := range sortedContactIDs(p) {
		c := p.Contacts[id]
		if len(c.SurveyLogs) == 0 {
			if c.SurveyAnswer != "" {
				out = append(out, SurveyExportRow{ContactID: id, Answer: c.SurveyAnswer, Timestamp: exportTime(c.LastCalledAt)})
			}
			continue
		}
		for _, l := range c.SurveyLogs {
			out = append(out, SurveyExportRow{ContactID: id, Answer: l.Answer, Timestamp: exportTime(l.At)})
		}
	}
	return out
}

// OutcomeExportRows returns one row per contact with progress, by contact id.
func OutcomeExportRows(p Snapshot) []OutcomeExportRow {
	ids := sortedContactIDs(p)
	out := make([]OutcomeExportRow, 0, len(ids))
	for _, id := range ids {
		c := p.Contacts[id]
		out = append(out, OutcomeExportRow{ContactID: id, Outcome: c.Outcome, Timestamp: exportTime(c.LastCalledAt)})
	}
	return out
}

// NotCalledRows lists the queued contacts without an attempt, sorted by
// name and then id.
func NotCalledRows(p Snapshot, q Queue) []NotCalledRow {
	out := make([]NotCalledRow, 0)
	for _, id := range q.IDs {
		if p.Contact(id).Attempts > 0 {
			continue
		}
		out = append(out, NotCalledRow{ContactID: id, FullName: q.Contact(id).FullName()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FullName != out[j].FullName {
			return out[i].FullName < out[j].FullName
		}
		return out[i].ContactID < out[j].ContactID
	})
	return out
}

func sortedContactIDs(p Snapshot) []string {
	ids := make([]string, 0, len(p.Contacts))
	for id := range p.Contacts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func exportTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
