package domain

import "sort"

// Merge reconciles a locally cached snapshot with one fetched from the
// shared store. Neither argument is modified.
//
// For every contact present in remote, counters take the maximum of both
// sides, the outcome prefers remote, and the survey and note histories are
// unioned in timestamp order. Remote log entries already present in local
// are not appended again, so merging the same fetch twice is a no-op.
// Contacts only known locally are carried through unchanged.
func Merge(local, remote Snapshot) Snapshot {
	out := local.Clone()
	if out.CampaignID == "" {
		out.CampaignID = remote.CampaignID
	}
	if out.Contacts == nil {
		out.Contacts = map[string]ContactProgress{}
	}

	for id, rc := range remote.Contacts {
		lc := out.Contacts[id]
		out.Contacts[id] = mergeContact(lc, rc)
	}

	out.Recount()
	if out.Totals.Total <= 0 {
		out.Totals.Total = remote.Totals.Total
	}
	return out
}

func mergeContact(lc, rc ContactProgress) ContactProgress {
	m := ContactProgress{
		Attempts:     max(lc.Attempts, rc.Attempts),
		LastCalledAt: max(lc.LastCalledAt, rc.LastCalledAt),
		Outcome:      lc.Outcome,
	}
	if rc.Outcome != OutcomeUnset {
		m.Outcome = rc.Outcome
	}

	m.SurveyLogs = unionLogs(lc.SurveyLogs, rc.SurveyLogs, func(l SurveyLog) int64 { return l.At })
	if n := len(m.SurveyLogs); n > 0 {
		m.SurveyAnswer = m.SurveyLogs[n-1].Answer
	} else if rc.SurveyAnswer != "" {
		m.SurveyAnswer = rc.SurveyAnswer
	} else {
		m.SurveyAnswer = lc.SurveyAnswer
	}

	if rc.lastNoteAt() >= lc.lastNoteAt() && (len(rc.NotesLogs) > 0 || rc.Notes != "") {
		m.Notes = rc.Notes
	} else {
		m.Notes = lc.Notes
	}
	m.NotesLogs = unionLogs(lc.NotesLogs, rc.NotesLogs, func(l NoteLog) int64 { return l.At })
	if n := len(m.NotesLogs); n > MaxNotesLogs {
		m.NotesLogs = m.NotesLogs[n-MaxNotesLogs:]
	}
	return m
}

// unionLogs appends the remote entries that local does not already hold
// (matched as a multiset) and stable-sorts the result by timestamp.
func unionLogs[T comparable](local, remote []T, at func(T) int64) []T {
	seen := make(map[T]int, len(local))
	for _, l := range local {
		seen[l]++
	}
	out := make([]T, 0, len(local)+len(remote))
	out = append(out, local...)
	for _, r := range remote {
		if seen[r] > 0 {
			seen[r]--
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return at(out[i]) < at(out[j]) })
	return out
}
