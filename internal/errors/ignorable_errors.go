package errors

import "strings"

// ignorableErrorSubstrings lists error fragments produced when a client
// walks away mid-request. These are logged at debug level instead of error
// so that aborted long-running LLM calls do not pollute the logs.
var ignorableErrorSubstrings = []string{
	"context canceled",
	"connection reset by peer",
	"broken pipe",
	"use of closed network connection",
	"request canceled",
	"client disconnected",
}

// IsIgnorableError reports whether the error stems from a client
// disconnecting rather than a server-side failure.
func IsIgnorableError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, substring := range ignorableErrorSubstrings {
		if strings.Contains(msg, substring) {
			return true
		}
	}
	return false
}
