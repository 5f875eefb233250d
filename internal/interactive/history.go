package interactive

// Action is what the user asked the session to do with a file.
type Action int

const (
	// Encrypt obfuscates a file.
	Encrypt Action = iota
	// Decrypt restores an obfuscated file.
	Decrypt
)

func (a Action) String() string {
	if a == Decrypt {
		return "Decrypt"
	}

	return "Encrypt"
}

// Entry records a single attempt.
type Entry struct {
	Path    string
	Action  Action
	Success bool
}

// History holds the attempts made during one session. It is never persisted.
type History struct {
	entries []Entry
}

// Add appends an entry.
func (h *History) Add(path string, action Action, success bool) {
	h.entries = append(h.entries, Entry{Path: path, Action: action, Success: success})
}

// Entries returns a copy of the recorded entries in order.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}

// Count returns how many attempts of the given action were made, successful or not.
func (h *History) Count(action Action) int {
	var n int

	for _, e := range h.entries {
		if e.Action == action {
			n++
		}
	}

	return n
}
