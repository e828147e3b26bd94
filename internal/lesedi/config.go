package lesedi

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/afero"
	"google.golang.org/grpc"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/driver"
	"github.com/lesedi-io/lesedi/internal/driver/covers"
	"github.com/lesedi-io/lesedi/internal/driver/dome"
	"github.com/lesedi-io/lesedi/internal/driver/focuser"
	"github.com/lesedi-io/lesedi/internal/driver/rotator"
	"github.com/lesedi-io/lesedi/internal/driver/telescope"
	"github.com/lesedi-io/lesedi/internal/lesedi/coordinator"
	"github.com/lesedi-io/lesedi/internal/pkg/server"
	"github.com/lesedi-io/lesedi/internal/pkg/telemetry"
	"github.com/lesedi-io/lesedi/pkg/log"
	"github.com/lesedi-io/lesedi/pkg/mqtt"
	"github.com/lesedi-io/lesedi/pkg/options"
)

type Config struct {
	HardwareOptions *HardwareOptions
	SequenceOptions *SequenceOptions
	GrpcOptions     *options.GrpcOptions
	HttpOptions     *options.HttpOptions
	MqttOptions     *options.MqttOptions

	// Fs holds the rotator limit files. Nil means the OS filesystem.
	Fs afero.Fs
}

// NewLesediServer wires the drivers, the coordinator and the servers.
func (cfg *Config) NewLesediServer() (*LesediServer, error) {
	seq, err := cfg.SequenceOptions.Config()
	if err != nil {
		return nil, err
	}
	fsys := cfg.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	hw, conns := cfg.hardware(fsys)

	var (
		c    *coordinator.Coordinator
		opts []coordinator.Option
		pub  *telemetry.Publisher
	)
	if cfg.MqttOptions.Enabled() {
		client, err := mqtt.NewClient(telemetry.ClientConfig(cfg.MqttOptions))
		if err != nil {
			return nil, fmt.Errorf("failed to init mqtt client: %w", err)
		}
		pub = telemetry.New(client, cfg.MqttOptions, func(ctx context.Context) (*v1.Status, error) {
			return c.Status(ctx)
		})
		opts = append(opts, coordinator.WithEventSink(pub))
	}
	c = coordinator.New(hw, seq, opts...)

	svc := NewService(c)
	grpcServer := server.NewGRPCServer(cfg.GrpcOptions, func(r grpc.ServiceRegistrar) {
		v1.RegisterLesediServiceServer(r, svc)
	})
	httpServer := server.NewHTTPServer(cfg.HttpOptions, func(ctx context.Context) error {
		_, err := hw.Dome.Status(ctx)
		return err
	})
	httpServer.HandleJSON("/api/v1/status", func(ctx context.Context) (any, error) {
		return c.Status(ctx)
	})

	manager := server.NewManager(c, grpcServer, httpServer)
	if pub != nil {
		manager.Add(pub)
	}

	return &LesediServer{
		serverManager: manager,
		conns:         conns,
	}, nil
}

func (cfg *Config) hardware(fsys afero.Fs) (coordinator.Hardware, []*driver.Conn) {
	o := cfg.HardwareOptions
	var conns []*driver.Conn
	conn := func(subsystem string, e Endpoint) *driver.Conn {
		c := driver.NewConn(subsystem, net.JoinHostPort(e.Host, strconv.Itoa(e.Port)), o.Timeout)
		conns = append(conns, c)
		return c
	}

	hw := coordinator.Hardware{
		Dome:         dome.New(conn(dome.Subsystem, o.Dome)),
		Telescope:    telescope.New(conn(telescope.Subsystem, o.Telescope)),
		Focuser:      focuser.New(conn(focuser.Subsystem, o.Focuser)),
		RotatorLeft:  rotator.New(conn("rotator-left", o.RotatorLeft), limits(fsys, o.RotatorLeftLimits)),
		RotatorRight: rotator.New(conn("rotator-right", o.RotatorRight), limits(fsys, o.RotatorRightLimits)),
		Covers:       covers.New(o.Covers.Host, o.Covers.Port, o.Timeout),
	}
	return hw, conns
}

// limits loads a rotator limits file and follows edits to it on the OS
// filesystem. A missing file or an empty path uses the defaults.
func limits(fsys afero.Fs, path string) rotator.LimitsSource {
	if path == "" {
		return rotator.DefaultLimits
	}
	ok, _ := afero.Exists(fsys, path)
	if !ok {
		log.Warn("Rotator limits file not found, using defaults", "path", path)
		return rotator.DefaultLimits
	}
	f := rotator.LoadLimits(fsys, path)
	if _, osFs := fsys.(*afero.OsFs); osFs {
		f.Watch()
	}
	return f
}
