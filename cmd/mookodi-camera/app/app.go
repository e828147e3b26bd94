package app

import (
	"fmt"

	genericapiserver "k8s.io/apiserver/pkg/server"

	"github.com/lesedi-io/lesedi/cmd/mookodi-camera/app/options"
	"github.com/lesedi-io/lesedi/pkg/app"
)

const (
	commandName = "mookodi-camera"
	commandDesc = `The Mookodi camera server emulates the CCD camera. Exposures are read out
into a synthetic gradient and saved to the frame store, where the reduction
pipeline can pick them up.`
)

func NewApp() *app.App {
	opts := options.NewCameraServerOptions()
	return app.NewApp(
		commandName,
		"Launch the emulated Mookodi camera server",
		app.WithDescription(commandDesc),
		app.WithOptions(opts),
		app.WithDefaultValidArgs(),
		app.WithWatchConfig(),
		app.WithRunFunc(run(opts)),
	)
}

func run(opts *options.CameraServerOptions) app.RunFunc {
	return func() error {
		ctx := genericapiserver.SetupSignalContext()

		cfg, err := opts.Config()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		server, err := cfg.NewCameraServer(ctx)
		if err != nil {
			return fmt.Errorf("failed to create camera server: %w", err)
		}

		return server.Run(ctx)
	}
}
