package model

import "trainctl/pkg/logging"

// RunOnUIMsg carries a function posted through the program scheduler. Update
// runs it on the UI goroutine.
type RunOnUIMsg struct {
	Fn func()
}

// NewLogEntryMsg delivers one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg clears the status bar if Seq is still the latest message.
type ClearStatusBarMsg struct {
	Seq int
}
