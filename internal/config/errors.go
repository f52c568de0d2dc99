package config

import (
	"errors"
	"fmt"
)

// MissingError marks a required credential or setting that is absent. It is
// fatal for the request that needed it and surfaces as a server error.
type MissingError struct {
	Key string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Key)
}

// AsMissingError attempts to unwrap an error into a MissingError.
func AsMissingError(err error) (*MissingError, bool) {
	var me *MissingError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}
