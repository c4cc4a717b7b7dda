// Package notify provides user-facing notification fan-out for boadap.
//
// Components that need to surface a message to the user (the resolver when a
// configuration has no program, the spawn step when no executable can be
// found) report through the Reporter capability instead of writing to the
// console directly, so tests can assert on reported failures without a host
// editor.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Severity classifies a notification.
type Severity int

const (
	// SeverityInfo is an informational message.
	SeverityInfo Severity = iota

	// SeverityWarn is a warning that blocks the current session start.
	SeverityWarn
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	default:
		return "unknown"
	}
}

// Message is a single reported notification.
type Message struct {
	// Severity is the message severity.
	Severity Severity

	// Text is the user-facing message text.
	Text string
}

// Reporter is the notification capability injected into components.
type Reporter interface {
	// Inform reports an informational message.
	Inform(msg string)

	// Warn reports a warning message.
	Warn(msg string)
}

// Observer is called for each reported message.
type Observer func(msg Message)

// Notifier is an observer-based Reporter.
//
// Observers are invoked synchronously in subscription order. Notifier is
// safe for concurrent use.
type Notifier struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers an observer for all future messages.
func (n *Notifier) Subscribe(obs Observer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observers = append(n.observers, obs)
}

// Inform reports an informational message.
func (n *Notifier) Inform(msg string) {
	n.publish(Message{Severity: SeverityInfo, Text: msg})
}

// Warn reports a warning message.
func (n *Notifier) Warn(msg string) {
	n.publish(Message{Severity: SeverityWarn, Text: msg})
}

func (n *Notifier) publish(msg Message) {
	n.mu.RLock()
	observers := make([]Observer, len(n.observers))
	copy(observers, n.observers)
	n.mu.RUnlock()

	for _, obs := range observers {
		obs(msg)
	}
}

// Console is a Reporter that writes plain-text messages to a writer,
// typically os.Stderr.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole creates a Console reporter writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Inform writes an informational message.
func (c *Console) Inform(msg string) {
	c.write("boadap: %s\n", msg)
}

// Warn writes a warning message.
func (c *Console) Warn(msg string) {
	c.write("boadap: warning: %s\n", msg)
}

func (c *Console) write(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, format, args...)
}

// Discard is a Reporter that drops all messages.
type Discard struct{}

// Inform drops the message.
func (Discard) Inform(string) {}

// Warn drops the message.
func (Discard) Warn(string) {}
