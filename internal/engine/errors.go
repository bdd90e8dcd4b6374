package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyBody is reported when a request that must carry content returns none.
var ErrEmptyBody = errors.New("empty response body")

// TransportError is a failed request: the transport errored, the status was
// not 2xx, or a required body was empty.
type TransportError struct {
	Op         string // what the request was for, e.g. "client config fetch"
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: HTTP %d: %v", e.Op, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// CheckSuccess returns a *TransportError unless resp has a 2xx status.
// With requireContent, an empty body is also an error.
func CheckSuccess(resp *Response, op, url string, requireContent bool) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: op, URL: url, StatusCode: resp.StatusCode, Err: snippetError(resp.Body)}
	}
	if requireContent && len(resp.Body) == 0 {
		return &TransportError{Op: op, URL: url, StatusCode: resp.StatusCode, Err: ErrEmptyBody}
	}
	return nil
}

func snippetError(body []byte) error {
	if len(body) == 0 {
		return nil
	}
	return errors.New(Truncate(string(body), 256))
}
