package domain

type ConnectionType string

const (
	ConnectionWifi     ConnectionType = "wifi"
	ConnectionCellular ConnectionType = "cellular"
	ConnectionWired    ConnectionType = "wired"
	ConnectionUnknown  ConnectionType = "unknown"
)

// Connection is a snapshot of the host network status.
type Connection struct {
	Connected bool
	Type      ConnectionType
}
