package sim

import (
	"context"
	"net"
	"strconv"

	"golang.org/x/sync/errgroup"
	"k8s.io/utils/clock"
)

// Ports lists the TCP port of every simulated device. Zero picks a free port.
type Ports struct {
	Telescope    int
	RotatorLeft  int
	RotatorRight int
	Focuser      int
	Dome         int
	Covers       int
}

// Observatory is the full set of simulated devices.
type Observatory struct {
	Dome         *Dome
	Telescope    *Telescope
	Focuser      *Focuser
	RotatorLeft  *Rotator
	RotatorRight *Rotator
	Covers       *Covers

	servers map[string]*LineServer
}

// NewObservatory builds every device from sc, bound to host.
func NewObservatory(sc *Scenario, host string, ports Ports, clk clock.PassiveClock) *Observatory {
	if sc == nil {
		sc = DefaultScenario()
	}
	addr := func(port int) string { return net.JoinHostPort(host, strconv.Itoa(port)) }

	o := &Observatory{
		Dome:         NewDome(sc.Dome),
		Telescope:    NewTelescope(sc.Telescope, clk),
		Focuser:      NewFocuser(sc.Focuser),
		RotatorLeft:  NewRotator(sc.Rotators.Left),
		RotatorRight: NewRotator(sc.Rotators.Right),
		Covers:       NewCovers(sc.Covers, addr(ports.Covers)),
	}
	o.servers = map[string]*LineServer{
		"dome":          NewLineServer("dome", addr(ports.Dome), o.Dome),
		"telescope":     NewLineServer("telescope", addr(ports.Telescope), o.Telescope),
		"focuser":       NewLineServer("focuser", addr(ports.Focuser), o.Focuser),
		"rotator-left":  NewLineServer("rotator-left", addr(ports.RotatorLeft), o.RotatorLeft),
		"rotator-right": NewLineServer("rotator-right", addr(ports.RotatorRight), o.RotatorRight),
	}
	return o
}

// Listen binds every listener so Addrs is accurate before Start.
func (o *Observatory) Listen() error {
	for _, s := range o.servers {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	return o.Covers.Listen()
}

// Addrs returns the bound address of every device keyed by name.
func (o *Observatory) Addrs() map[string]string {
	out := map[string]string{"covers": o.Covers.Addr()}
	for name, s := range o.servers {
		out[name] = s.Addr()
	}
	return out
}

// Start serves every device until ctx is done.
func (o *Observatory) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range o.servers {
		g.Go(func() error { return s.Start(ctx) })
	}
	g.Go(func() error { return o.Covers.Start(ctx) })
	return g.Wait()
}
