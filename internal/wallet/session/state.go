package session

// State is the stage a Processor's transaction has reached.
type State uint8

const (
	StateEmpty State = iota
	StatePrepared
	StateSerialized
	StateSigned
	StateBroadcast
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePrepared:
		return "prepared"
	case StateSerialized:
		return "serialized"
	case StateSigned:
		return "signed"
	case StateBroadcast:
		return "broadcast"
	default:
		return "unknown"
	}
}
