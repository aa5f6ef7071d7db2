package memory

import "errors"

var (
	ErrInvalidAgentName = errors.New("invalid agent name")
)
