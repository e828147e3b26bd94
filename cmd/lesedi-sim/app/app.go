package app

import (
	"fmt"

	genericapiserver "k8s.io/apiserver/pkg/server"
	"k8s.io/utils/clock"

	"github.com/lesedi-io/lesedi/cmd/lesedi-sim/app/options"
	"github.com/lesedi-io/lesedi/internal/sim"
	"github.com/lesedi-io/lesedi/pkg/app"
	"github.com/lesedi-io/lesedi/pkg/log"
)

const (
	commandName = "lesedi-sim"
	commandDesc = `The Lesedi simulator serves the dome, telescope, focuser and rotator line
protocols and the mirror cover Modbus registers, so the control server can run
without the observatory.`
)

func NewApp() *app.App {
	opts := options.NewSimOptions()
	return app.NewApp(
		commandName,
		"Run the Lesedi hardware simulators",
		app.WithDescription(commandDesc),
		app.WithOptions(opts),
		app.WithDefaultValidArgs(),
		app.WithRunFunc(run(opts)),
	)
}

func run(opts *options.SimOptions) app.RunFunc {
	return func() error {
		ctx := genericapiserver.SetupSignalContext()

		sc, err := sim.LoadScenario(opts.Scenario)
		if err != nil {
			return err
		}

		o := sim.NewObservatory(sc, opts.Host, opts.Ports, clock.RealClock{})
		if err := o.Listen(); err != nil {
			return fmt.Errorf("failed to listen: %w", err)
		}
		for name, addr := range o.Addrs() {
			log.Info("Simulator listening", "device", name, "addr", addr)
		}
		return o.Start(ctx)
	}
}
