package flow

// Mode is what the simulator window is doing.
type Mode int

const (
	ModeRunning Mode = iota
	ModePaused
	ModeError
)

func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "Running"
	case ModePaused:
		return "Paused"
	case ModeError:
		return "Error"
	}
	return "Unknown"
}
