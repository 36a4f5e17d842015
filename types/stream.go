package types

// StreamState is the lifecycle state of one streaming call.
type StreamState int32

const (
	StreamStateOpen StreamState = iota
	// StreamStateStreaming is the active state of a price subscription.
	StreamStateStreaming
	// StreamStateReceiving is the active state of a bulk order upload.
	StreamStateReceiving
	// StreamStateClosed is the normal end of a call, for a bulk upload it
	// means the summary was produced.
	StreamStateClosed
	StreamStateFailed
)

func (s StreamState) String() string {
	switch s {
	case StreamStateOpen:
		return "open"
	case StreamStateStreaming:
		return "streaming"
	case StreamStateReceiving:
		return "receiving"
	case StreamStateClosed:
		return "closed"
	case StreamStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further message may be read or written.
func (s StreamState) IsTerminal() bool {
	return s == StreamStateClosed || s == StreamStateFailed
}
