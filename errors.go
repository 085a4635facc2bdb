package sfex

import "fmt"

// StatusError is returned when the server answers with a non-2xx
// status. Body holds the raw response, the exchange does not document
// its failure payloads.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sfex: unexpected status %d: %s", e.StatusCode, e.Body)
}
