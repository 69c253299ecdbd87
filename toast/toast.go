package toast

import "time"

// Level is the severity of a notice
type Level int

const (
	Info Level = iota
	Success
	Error
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notice is a transient message shown to the user
type Notice struct {
	Level Level
	Text  string
	At    time.Time
}

// InfoNotice builds an info level notice
func InfoNotice(text string) Notice { return Notice{Level: Info, Text: text} }

// SuccessNotice builds a success level notice
func SuccessNotice(text string) Notice { return Notice{Level: Success, Text: text} }

// ErrorNotice builds an error level notice
func ErrorNotice(text string) Notice { return Notice{Level: Error, Text: text} }

const (
	DefaultTTL = 4 * time.Second
	maxVisible = 3
)

// Stack holds notices until they expire
type Stack struct {
	ttl   time.Duration
	items []Notice
}

// NewStack creates a stack whose notices live for ttl
func NewStack(ttl time.Duration) *Stack {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Stack{ttl: ttl}
}

// Push adds notices, stamping them with now
func (s *Stack) Push(now time.Time, notices ...Notice) {
	for _, n := range notices {
		n.At = now
		s.items = append(s.items, n)
	}
}

// Prune drops expired notices and reports whether any remain
func (s *Stack) Prune(now time.Time) bool {
	kept := s.items[:0]
	for _, n := range s.items {
		if now.Sub(n.At) < s.ttl {
			kept = append(kept, n)
		}
	}
	s.items = kept
	return len(s.items) > 0
}

// Visible returns the newest unexpired notices, oldest first
func (s *Stack) Visible(now time.Time) []Notice {
	var out []Notice
	for _, n := range s.items {
		if now.Sub(n.At) < s.ttl {
			out = append(out, n)
		}
	}
	if len(out) > maxVisible {
		out = out[len(out)-maxVisible:]
	}
	return out
}

// Len is the number of notices held, expired or not
func (s *Stack) Len() int {
	return len(s.items)
}
