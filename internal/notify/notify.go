// Package notify carries user-visible feedback for store mutations, the
// terminal counterpart of the web client's toasts.
package notify

import (
	"fmt"
	"log"
)

// Notifier receives non-blocking notifications. Error is informational only;
// the operation that raised it has already completed in memory.
type Notifier interface {
	Success(title, detail string)
	Error(title, detail string)
}

// Console prints notifications to stdout for the interactive explorer.
type Console struct{}

func (Console) Success(title, detail string) {
	fmt.Printf("%s: %s\n", title, detail)
}

func (Console) Error(title, detail string) {
	fmt.Printf("%s: %s\n", title, detail)
}

// Log routes notifications to the standard logger.
type Log struct{}

func (Log) Success(title, detail string) {
	log.Printf("%s: %s", title, detail)
}

func (Log) Error(title, detail string) {
	log.Printf("%s: %s", title, detail)
}
