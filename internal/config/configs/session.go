package configs

import "time"

// Session tunes execution sessions and the write-through to the shared
// store.
type Session struct {
	// NotesDelay is the quiet period before an edited note is saved.
	NotesDelay time.Duration `env:"NOTES_DELAY" envDefault:"400ms"`
	// WriteBuffer bounds the pushes waiting for the shared store. Pushes
	// beyond it are dropped and logged.
	WriteBuffer int `env:"WRITE_BUFFER" envDefault:"256"`
	// PushTimeout bounds a single push.
	PushTimeout time.Duration `env:"PUSH_TIMEOUT" envDefault:"10s"`
	// FetchTimeout bounds a snapshot read from the shared store.
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`
	// IdleTimeout ends sessions nobody has used for this long. Zero keeps
	// them until they are ended explicitly.
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT" envDefault:"30m"`
}
