package netmon

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"stocksinfo/internal/application"
	"stocksinfo/internal/domain"
	infraconfig "stocksinfo/internal/infrastructure/config"

	"go.uber.org/zap"
)

var (
	_ application.Connectivity = (*Monitor)(nil)
	_ application.Worker       = (*Monitor)(nil)
)

// Iface is the subset of an interface the monitor classifies.
type Iface struct {
	Name  string
	Up    bool
	Loop  bool
	Addrs []net.IP
}

// Monitor polls host interfaces and publishes the resulting Connection.
// List and Wireless default to the host's interfaces and sysfs.
type Monitor struct {
	PollEvery time.Duration
	Log       *zap.Logger
	List      func() ([]Iface, error)
	Wireless  func(name string) bool

	status atomic.Pointer[domain.Connection]
}

func New(poll time.Duration, log *zap.Logger) *Monitor {
	return &Monitor{PollEvery: poll, Log: log}
}

// Status reports the last observed connection, or connected/unknown before
// the first poll.
func (m *Monitor) Status() domain.Connection {
	if c := m.status.Load(); c != nil {
		return *c
	}
	return domain.Connection{Connected: true, Type: domain.ConnectionUnknown}
}

// Start polls until ctx ends. The first poll happens immediately.
func (m *Monitor) Start(ctx context.Context) {
	log := m.Log
	if log == nil {
		log = zap.NewNop()
	}
	if m.PollEvery <= 0 {
		m.PollEvery = infraconfig.DefaultNetmonPoll
	}

	t := time.NewTicker(m.PollEvery)
	defer t.Stop()

	log.Info("netmon.started", zap.Duration("poll_every", m.PollEvery))
	m.Poll(log)
	for {
		select {
		case <-ctx.Done():
			log.Info("netmon.stopped")
			return
		case <-t.C:
			m.Poll(log)
		}
	}
}

// Poll takes one reading and stores it.
func (m *Monitor) Poll(log *zap.Logger) domain.Connection {
	if log == nil {
		log = zap.NewNop()
	}
	list := m.List
	if list == nil {
		list = hostInterfaces
	}
	wireless := m.Wireless
	if wireless == nil {
		wireless = sysfsWireless
	}

	ifaces, err := list()
	if err != nil {
		log.Warn("netmon.list_failed", zap.Error(err))
		return m.Status()
	}
	next := Classify(ifaces, wireless)
	if prev := m.status.Swap(&next); prev == nil || *prev != next {
		log.Info("netmon.changed", zap.Bool("connected", next.Connected), zap.String("type", string(next.Type)))
	}
	return next
}

// Classify picks the best usable interface: wifi, then wired, then cellular.
func Classify(ifaces []Iface, wireless func(string) bool) domain.Connection {
	best := domain.Connection{}
	rank := map[domain.ConnectionType]int{
		domain.ConnectionUnknown:  1,
		domain.ConnectionCellular: 2,
		domain.ConnectionWired:    3,
		domain.ConnectionWifi:     4,
	}
	for _, ifc := range ifaces {
		if !ifc.Up || ifc.Loop || !hasGlobalUnicast(ifc.Addrs) {
			continue
		}
		typ := kind(ifc.Name, wireless)
		if !best.Connected || rank[typ] > rank[best.Type] {
			best = domain.Connection{Connected: true, Type: typ}
		}
	}
	if !best.Connected {
		best.Type = domain.ConnectionUnknown
	}
	return best
}

func kind(name string, wireless func(string) bool) domain.ConnectionType {
	if wireless != nil && wireless(name) {
		return domain.ConnectionWifi
	}
	for _, p := range []string{"wwan", "rmnet", "ppp", "ccmni"} {
		if strings.HasPrefix(name, p) {
			return domain.ConnectionCellular
		}
	}
	if strings.HasPrefix(name, "wl") {
		return domain.ConnectionWifi
	}
	for _, p := range []string{"eth", "en"} {
		if strings.HasPrefix(name, p) {
			return domain.ConnectionWired
		}
	}
	return domain.ConnectionUnknown
}

func hasGlobalUnicast(ips []net.IP) bool {
	for _, ip := range ips {
		if ip.IsGlobalUnicast() {
			return true
		}
	}
	return false
}

func hostInterfaces() ([]Iface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	out := make([]Iface, 0, len(ifaces))
	for _, ifc := range ifaces {
		item := Iface{
			Name: ifc.Name,
			Up:   ifc.Flags&net.FlagUp != 0,
			Loop: ifc.Flags&net.FlagLoopback != 0,
		}
		addrs, err := ifc.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			if ipn, ok := a.(*net.IPNet); ok {
				item.Addrs = append(item.Addrs, ipn.IP)
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func sysfsWireless(name string) bool {
	_, err := os.Stat(filepath.Join("/sys/class/net", name, "wireless"))
	return err == nil
}
