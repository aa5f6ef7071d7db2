package debate

import "errors"

var (
	ErrSessionNotFound  = errors.New("debate session not found")
	ErrSessionTerminal  = errors.New("debate session already finished")
	ErrSessionRunning   = errors.New("debate session already streaming")
	ErrTurnNotFound     = errors.New("agent turn not found")
	ErrInvalidAgentName = errors.New("unknown agent name")
)
