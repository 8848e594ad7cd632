package notification

import "log"

// ShowBlockingError reports a problem the user must acknowledge before the
// process continues (or exits). Always logged; shown natively where possible.
func ShowBlockingError(title, message string) {
	log.Printf("%s: %s", title, message)
	showBlockingError(title, message)
}
