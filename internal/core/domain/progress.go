package domain

// Outcome is the result of the most recent call attempt.
type Outcome string

const (
	OutcomeUnset    Outcome = ""
	OutcomeAnswered Outcome = "answered"
	OutcomeNoAnswer Outcome = "no_answer"
)

// ParseOutcome maps any value other than "answered" to OutcomeNoAnswer, the
// same way a recorded attempt is interpreted.
func ParseOutcome(s string) Outcome {
	if Outcome(s) == OutcomeAnswered {
		return OutcomeAnswered
	}
	return OutcomeNoAnswer
}

// MaxNotesLogs is the number of note history entries kept per contact.
const MaxNotesLogs = 10

// SurveyLog is one recorded survey answer. At is ms since epoch.
type SurveyLog struct {
	Answer string `json:"answer"`
	At     int64  `json:"at"`
}

// NoteLog is one recorded note revision. At is ms since epoch.
type NoteLog struct {
	Text string `json:"text"`
	At   int64  `json:"at"`
}

// ContactProgress is the progress of one contact within one campaign.
// Attempts, Outcome and LastCalledAt change only when an outcome is
// recorded; survey and note edits never touch them.
type ContactProgress struct {
	Attempts     int         `json:"attempts"`
	Outcome      Outcome     `json:"outcome,omitempty"`
	LastCalledAt int64       `json:"lastCalledAt"`
	SurveyAnswer string      `json:"surveyAnswer,omitempty"`
	SurveyLogs   []SurveyLog `json:"surveyLogs"`
	Notes        string      `json:"notes"`
	NotesLogs    []NoteLog   `json:"notesLogs"`
}

// Clone returns a deep copy.
func (c ContactProgress) Clone() ContactProgress {
	out := c
	out.SurveyLogs = append([]SurveyLog(nil), c.SurveyLogs...)
	out.NotesLogs = append([]NoteLog(nil), c.NotesLogs...)
	return out
}

// AppendNote sets the current note and appends it to the capped history.
func (c *ContactProgress) AppendNote(text string, at int64) {
	c.Notes = text
	c.NotesLogs = append(c.NotesLogs, NoteLog{Text: text, At: at})
	if n := len(c.NotesLogs); n > MaxNotesLogs {
		c.NotesLogs = append([]NoteLog(nil), c.NotesLogs[n-MaxNotesLogs:]...)
	}
}

// AppendSurvey sets the current survey answer and appends it to the history.
func (c *ContactProgress) AppendSurvey(answer string, at int64) {
	c.SurveyAnswer = answer
	c.SurveyLogs = append(c.SurveyLogs, SurveyLog{Answer: answer, At: at})
}

// lastNoteAt returns the timestamp of the newest note, 0 when none.
func (c ContactProgress) lastNoteAt() int64 {
	if len(c.NotesLogs) == 0 {
		return 0
	}
	return c.NotesLogs[len(c.NotesLogs)-1].At
}

// Totals are derived from the contacts of a snapshot; never set them by
// hand except for Total, which is seeded from the queue size.
type Totals struct {
	Total    int `json:"total"`
	Made     int `json:"made"`
	Answered int `json:"answered"`
	Missed   int `json:"missed"`
}

// AllDone reports whether every contact was attempted and none is missed.
func (t Totals) AllDone() bool {
	return t.Missed == 0 && t.Made == t.Total && t.Total > 0
}

// Snapshot is the full progress state of one campaign.
type Snapshot struct {
	CampaignID string                     `json:"campaignId"`
	Totals     Totals                     `json:"totals"`
	Contacts   map[string]ContactProgress `json:"contacts"`
}

// NewSnapshot returns an empty snapshot seeded with the queue size.
func NewSnapshot(campaignID string, total int) Snapshot {
	return Snapshot{
		CampaignID: campaignID,
		Totals:     Totals{Total: total},
		Contacts:   map[string]ContactProgress{},
	}
}

// Contact returns the progress of a contact, or a zero record.
func (s Snapshot) Contact(id string) ContactProgress {
	if c, ok := s.Contacts[id]; ok {
		return c
	}
	return ContactProgress{}
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{CampaignID: s.CampaignID, Totals: s.Totals, Contacts: make(map[string]ContactProgress, len(s.Contacts))}
	for id, c := range s.Contacts {
		out.Contacts[id] = c.Clone()
	}
	return out
}

// Recount recomputes Made, Answered and Missed from the contacts.
func (s *Snapshot) Recount() {
	var made, answered, missed int
	for _, c := range s.Contacts {
		if c.Attempts > 0 {
			made++
		}
		switch c.Outcome {
		case OutcomeAnswered:
			answered++
		case OutcomeNoAnswer:
			missed++
		}
	}
	s.Totals.Made = made
	s.Totals.Answered = answered
	s.Totals.Missed = missed
}
