package app

import (
	"fmt"

	genericapiserver "k8s.io/apiserver/pkg/server"

	"github.com/lesedi-io/lesedi/cmd/lesedi/app/options"
	"github.com/lesedi-io/lesedi/pkg/app"
)

const (
	commandName = "lesedi"
	commandDesc = `The Lesedi telescope control server connects to the dome, telescope,
focuser, rotator and mirror cover controllers, runs the startup and shutdown
sequences and serves the control API over gRPC. Status and events are
published over MQTT when a broker is configured.`
)

func NewApp() *app.App {
	opts := options.NewServerOptions()
	return app.NewApp(
		commandName,
		"Launch the Lesedi telescope control server",
		app.WithDescription(commandDesc),
		app.WithOptions(opts),
		app.WithDefaultValidArgs(),
		app.WithWatchConfig(),
		app.WithRunFunc(run(opts)),
	)
}

func run(opts *options.ServerOptions) app.RunFunc {
	return func() error {
		ctx := genericapiserver.SetupSignalContext()

		cfg, err := opts.Config()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		server, err := cfg.NewLesediServer()
		if err != nil {
			return fmt.Errorf("failed to create lesedi server: %w", err)
		}

		return server.Run(ctx)
	}
}
