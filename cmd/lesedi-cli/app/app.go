package app

import (
	"context"

	"github.com/lesedi-io/lesedi/cmd/lesedi-cli/app/options"
	"github.com/lesedi-io/lesedi/pkg/app"
	"github.com/lesedi-io/lesedi/pkg/client"
)

const (
	commandName = "lesedi-cli"
	commandDesc = `lesedi-cli drives the Lesedi telescope control server and the Mookodi
camera. Every subcommand opens its own connection. Server addresses default to
LESEDI_HOST/LESEDI_PORT and MOOKODI_HOST/MOOKODI_PORT, read from the
environment or a .env file.`
)

func NewApp() *app.App {
	opts := options.NewCLIOptions()
	c := &cli{opts: opts}
	cmds := append(c.lesediCommands(),
		c.statusCommand(),
		c.fitsInfoCommand(),
		c.consoleCommand(),
		c.monitorCommand(),
		c.cameraCommand(),
	)
	return app.NewApp(
		commandName,
		"Operate the Lesedi telescope and the Mookodi camera",
		app.WithDescription(commandDesc),
		app.WithOptions(opts),
		app.WithSubCommands(cmds...),
	)
}

type cli struct {
	opts *options.CLIOptions
}

func (c *cli) withLesedi(ctx context.Context, fn func(context.Context, *client.Lesedi) error) error {
	l, err := client.NewLesedi(ctx, c.opts.Lesedi)
	if err != nil {
		return err
	}
	defer l.Close()
	return fn(ctx, l)
}

func (c *cli) withCamera(ctx context.Context, fn func(context.Context, *client.Camera) error) error {
	cam, err := client.NewCamera(ctx, c.opts.Mookodi)
	if err != nil {
		return err
	}
	defer cam.Close()
	return fn(ctx, cam)
}
