package app

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	genericapiserver "k8s.io/apiserver/pkg/server"

	"github.com/lesedi-io/lesedi/cmd/mookodi-pipeline/app/options"
	"github.com/lesedi-io/lesedi/internal/pipeline"
	"github.com/lesedi-io/lesedi/internal/pkg/store"
	"github.com/lesedi-io/lesedi/pkg/app"
)

const (
	commandName = "mookodi-pipeline"
	commandDesc = `The Mookodi pipeline subtracts the bias and the scaled dark from raw
frames and divides by the flat. One calibration set is configured per mode.`
)

func NewApp() *app.App {
	opts := options.NewPipelineOptions()
	return app.NewApp(
		commandName,
		"Reduce Mookodi camera frames",
		app.WithDescription(commandDesc),
		app.WithOptions(opts),
		app.WithSubCommands(newReduceCommand(opts), newWatchCommand(opts)),
	)
}

func newReduceCommand(opts *options.PipelineOptions) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "reduce RAW OUT",
		Short: "Reduce one frame from the frame store",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := pipeline.ParseMode(mode)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			st, err := store.New(ctx, opts.StoreOptions)
			if err != nil {
				return fmt.Errorf("failed to init frame store: %w", err)
			}
			p, err := pipeline.New(ctx, st, opts.Reduction)
			if err != nil {
				return err
			}
			if err := p.Reduce(ctx, m, args[0], args[1]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(pipeline.ModeImage), "Calibration set to apply (image or spectrum).")
	return cmd
}

func newWatchCommand(opts *options.PipelineOptions) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "Reduce every raw exposure written to DIR",
		Long: `Watch DIR and reduce every raw exposure that appears in it. Calibration
frame names are taken relative to DIR and reduced frames are written next to
the raw ones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := pipeline.ParseMode(mode)
			if err != nil {
				return err
			}
			ctx := genericapiserver.SetupSignalContext()
			st, err := store.NewLocal(afero.NewOsFs(), args[0])
			if err != nil {
				return err
			}
			p, err := pipeline.New(ctx, st, opts.Reduction)
			if err != nil {
				return err
			}
			return p.Watch(ctx, args[0], m)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(pipeline.ModeImage), "Calibration set to apply (image or spectrum).")
	return cmd
}
