package gateway

import (
	"errors"
	"fmt"
)

// Error is returned for any network failure or non-success backend
// response. The previous local state is always left intact by callers.
type Error struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gateway: %s: backend returned %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("gateway: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsGatewayError reports whether err originated from a backend call.
func IsGatewayError(err error) bool {
	var ge *Error
	return errors.As(err, &ge)
}
