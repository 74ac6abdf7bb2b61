package netmon

import (
	"stocksinfo/internal/application"
	"stocksinfo/internal/domain"
)

var _ application.Connectivity = Static{}

// Static always reports the same connection.
type Static domain.Connection

func (s Static) Status() domain.Connection { return domain.Connection(s) }
