package backend

// QobjType declares what kind of work a legacy batch submission carries.
// The legacy facade dispatches on this field rather than inferring the kind
// from the payload.
type QobjType string

const (
	QobjQASM  QobjType = "QASM"
	QobjPulse QobjType = "PULSE"
)

// Qobj is a pre-built legacy batch-of-circuits submission object.
type Qobj struct {
	ID        string      `json:"qobj_id"`
	Type      QobjType    `json:"type"`
	Shots     int         `json:"shots"`
	Seed      int64       `json:"seed"`
	Circuits  []*Circuit  `json:"circuits,omitempty"`
	Schedules []*Schedule `json:"schedules,omitempty"`
}
