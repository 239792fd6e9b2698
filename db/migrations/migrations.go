package migrations

import "embed"

// FS holds the schema of the shared progress store: campaigns, students,
// call_progress, survey_responses and notes, the NOTIFY triggers that
// drive live session updates, and the export row tables.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 2
