package attempt

// Ledger is the in-memory question -> selected-option mapping for one
// attempt. Insertion order is irrelevant and Put overwrites, so repeated
// answers to the same question are idempotent in the last-write-wins
// sense. The Ledger itself is not goroutine-safe; the owning Session
// serializes access under its mutex.
type Ledger struct {
	entries map[string]string
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]string)}
}

// Put records the selected option for a question, overwriting any
// previous selection.
func (l *Ledger) Put(questionID, optionID string) {
	l.entries[questionID] = optionID
}

// Get returns the selected option for a question, if any.
func (l *Ledger) Get(questionID string) (string, bool) {
	optionID, ok := l.entries[questionID]
	return optionID, ok
}

// Len returns the number of answered questions.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Snapshot returns an immutable copy of the ledger for submission,
// decoupled from any further mutation of the live map.
func (l *Ledger) Snapshot() map[string]string {
	snap := make(map[string]string, len(l.entries))
	for questionID, optionID := range l.entries {
		snap[questionID] = optionID
	}
	return snap
}
