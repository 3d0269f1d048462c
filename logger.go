package main

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// EventLog appends timestamped event lines to a file.  It records what the
// hardware did (presses, commands, reboots) independently of the
// operational log, which goes to stderr and is subject to the verbosity
// level.  It is safe for concurrent use, and a nil *EventLog discards
// everything so callers never have to check whether event logging is
// enabled.
type EventLog struct {
	mu sync.Mutex
	f  *os.File
}

// OpenEventLog opens path for appending, creating it if needed.
func OpenEventLog(path string) (*EventLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}
	return &EventLog{f: f}, nil
}

// Printf writes a single event with timestamp.  Write errors are printed to
// standard error; an event log that fills up must not take the daemon down.
func (el *EventLog) Printf(format string, args ...any) {
	if el == nil {
		return
	}
	el.mu.Lock()
	defer el.mu.Unlock()
	line := fmt.Sprintf("%s - %s\n", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
	if _, err := el.f.WriteString(line); err != nil {
		fmt.Fprintf(os.Stderr, "event log write error: %v\n", err)
	}
}

func (el *EventLog) Close() error {
	if el == nil {
		return nil
	}
	return el.f.Close()
}
