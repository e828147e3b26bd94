package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/pkg/client"
)

type emptyCall func(v1.LesediServiceClient, context.Context, *emptypb.Empty, ...grpc.CallOption) (*emptypb.Empty, error)

var emptyCalls = []struct {
	use   string
	short string
	call  emptyCall
}{
	{"startup", "Run the startup sequence in the background", v1.LesediServiceClient.Startup},
	{"shutdown", "Run the shutdown sequence in the background", v1.LesediServiceClient.Shutdown},
	{"stop", "Emergency stop: halt the telescope, dome and secondary mirror", v1.LesediServiceClient.Stop},
	{"reset", "Clear the emergency stop", v1.LesediServiceClient.Reset},
	{"open-covers", "Open the mirror covers", v1.LesediServiceClient.OpenCovers},
	{"close-covers", "Close the mirror covers", v1.LesediServiceClient.CloseCovers},
	{"dome-remote-enable", "Put the dome under remote control", v1.LesediServiceClient.DomeRemoteEnable},
	{"park-dome", "Park the dome", v1.LesediServiceClient.ParkDome},
	{"open-dome", "Open the dome shutters", v1.LesediServiceClient.OpenDome},
	{"close-dome", "Close the dome shutters", v1.LesediServiceClient.CloseDome},
	{"stop-dome", "Stop dome rotation", v1.LesediServiceClient.StopDome},
	{"dome-follow-start", "Make the dome follow the telescope", v1.LesediServiceClient.DomeFollowTelescopeStart},
	{"dome-follow-stop", "Stop the dome following the telescope", v1.LesediServiceClient.DomeFollowTelescopeStop},
	{"dome-lights-on", "Turn the dome lights on", v1.LesediServiceClient.DomeLightsOn},
	{"dome-lights-off", "Turn the dome lights off", v1.LesediServiceClient.DomeLightsOff},
	{"slew-lights-on", "Turn the slew lights on", v1.LesediServiceClient.SlewLightsOn},
	{"slew-lights-off", "Turn the slew lights off", v1.LesediServiceClient.SlewLightsOff},
	{"rotator-tracking-on", "Start tracking on the selected instrument rotator", v1.LesediServiceClient.RotatorTrackingOn},
	{"rotator-tracking-off", "Stop tracking on the selected instrument rotator", v1.LesediServiceClient.RotatorTrackingOff},
	{"rotator-auto-on", "Put the selected instrument rotator in auto mode", v1.LesediServiceClient.RotatorAutoOn},
	{"rotator-auto-off", "Take the selected instrument rotator out of auto mode", v1.LesediServiceClient.RotatorAutoOff},
	{"secondary-stop", "Stop the secondary mirror", v1.LesediServiceClient.SecondaryMirrorStop},
	{"secondary-auto-on", "Put the secondary mirror in auto mode", v1.LesediServiceClient.SecondaryMirrorAutoOn},
	{"secondary-auto-off", "Take the secondary mirror out of auto mode", v1.LesediServiceClient.SecondaryMirrorAutoOff},
	{"tertiary-auto-on", "Put the tertiary mirror in auto mode", v1.LesediServiceClient.TertiaryMirrorAutoOn},
	{"tertiary-auto-off", "Take the tertiary mirror out of auto mode", v1.LesediServiceClient.TertiaryMirrorAutoOff},
	{"auto-on", "Put the telescope in auto mode", v1.LesediServiceClient.AutoOn},
	{"auto-off", "Take the telescope out of auto mode", v1.LesediServiceClient.AutoOff},
	{"park", "Park the telescope", v1.LesediServiceClient.Park},
	{"unpark", "Unpark the telescope", v1.LesediServiceClient.Unpark},
	{"abort", "Abort the telescope slew", v1.LesediServiceClient.Abort},
}

func (c *cli) lesediCommands() []*cobra.Command {
	var cmds []*cobra.Command
	for _, e := range emptyCalls {
		cmds = append(cmds, &cobra.Command{
			Use:   e.use,
			Short: e.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.withLesedi(cmd.Context(), func(ctx context.Context, l *client.Lesedi) error {
					if _, err := e.call(l, ctx, &emptypb.Empty{}); err != nil {
						return err
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", e.use)
					return nil
				})
			},
		})
	}
	return append(cmds,
		c.rotateDomeCommand(),
		c.setFocusCommand(),
		c.selectInstrumentCommand(),
		c.gotoAltAzCommand(),
		c.gotoRaDecCommand(),
		c.setTrackingModeCommand(),
		c.moveCommand(),
	)
}

func parseFloats(args []string, names ...string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", names[i], a)
		}
		out[i] = v
	}
	return out, nil
}

// request runs one call that takes arguments and reports success.
func (c *cli) request(cmd *cobra.Command, fn func(context.Context, *client.Lesedi) error) error {
	return c.withLesedi(cmd.Context(), func(ctx context.Context, l *client.Lesedi) error {
		if err := fn(ctx, l); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", cmd.Name())
		return nil
	})
}

func (c *cli) rotateDomeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate-dome AZIMUTH",
		Short: "Rotate the dome to an azimuth in degrees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "azimuth")
			if err != nil {
				return err
			}
			req := &v1.RotateDomeRequest{Azimuth: v[0]}
			if err := req.Validate(); err != nil {
				return err
			}
			return c.request(cmd, func(ctx context.Context, l *client.Lesedi) error {
				_, err := l.RotateDome(ctx, req)
				return err
			})
		},
	}
}

func (c *cli) setFocusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-focus INCHES",
		Short: "Move the secondary mirror to a focus position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "focus")
			if err != nil {
				return err
			}
			return c.request(cmd, func(ctx context.Context, l *client.Lesedi) error {
				_, err := l.SetFocus(ctx, &v1.SetFocusRequest{Inches: v[0]})
				return err
			})
		},
	}
}

func (c *cli) selectInstrumentCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "select-instrument wincam|shoc",
		Short:     "Turn the tertiary mirror to an instrument port",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"wincam", "shoc"},
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := v1.ParseInstrument(args[0])
			if err != nil {
				return err
			}
			return c.request(cmd, func(ctx context.Context, l *client.Lesedi) error {
				_, err := l.SelectInstrument(ctx, &v1.SelectInstrumentRequest{Instrument: inst})
				return err
			})
		},
	}
}

func (c *cli) gotoAltAzCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "goto-altaz ALT AZ",
		Short: "Slew the telescope to an altitude and azimuth in degrees",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "alt", "az")
			if err != nil {
				return err
			}
			return c.request(cmd, func(ctx context.Context, l *client.Lesedi) error {
				_, err := l.GotoAltAz(ctx, &v1.GotoAltAzRequest{Alt: v[0], Az: v[1]})
				return err
			})
		},
	}
}

func (c *cli) gotoRaDecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "goto-radec RA DEC",
		Short: "Slew the telescope to a right ascension (hours) and declination (degrees)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "ra", "dec")
			if err != nil {
				return err
			}
			req := &v1.GotoRaDecRequest{RA: v[0], Dec: v[1]}
			if err := req.Validate(); err != nil {
				return err
			}
			return c.request(cmd, func(ctx context.Context, l *client.Lesedi) error {
				_, err := l.GotoRaDec(ctx, req)
				return err
			})
		},
	}
}

func (c *cli) setTrackingModeCommand() *cobra.Command {
	var (
		trackType       string
		raRate, decRate float64
	)
	cmd := &cobra.Command{
		Use:       "set-tracking-mode on|off",
		Short:     "Turn telescope tracking on or off",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var tracking bool
			switch args[0] {
			case "on":
				tracking = true
			case "off":
			default:
				return fmt.Errorf("tracking must be on or off, got %q", args[0])
			}
			tt, err := v1.ParseTrackType(trackType)
			if err != nil {
				return err
			}
			req := &v1.SetTrackingModeRequest{Tracking: tracking, TrackType: tt, RARate: raRate, DecRate: decRate}
			return c.request(cmd, func(ctx context.Context, l *client.Lesedi) error {
				_, err := l.SetTrackingMode(ctx, req)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&trackType, "type", "sidereal", "Track type: sidereal or nonsidereal.")
	cmd.Flags().Float64Var(&raRate, "ra-rate", 0, "Right ascension rate for non-sidereal tracking.")
	cmd.Flags().Float64Var(&decRate, "dec-rate", 0, "Declination rate for non-sidereal tracking.")
	return cmd
}

func (c *cli) moveCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "move north|south|east|west ARCSEC",
		Short:     "Jog the telescope by a number of arcseconds",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"north", "south", "east", "west"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := v1.ParseDirection(args[0])
			if err != nil {
				return err
			}
			v, err := parseFloats(args[1:], "arcsec")
			if err != nil {
				return err
			}
			req := &v1.MoveRequest{Direction: dir, Arcsec: v[0]}
			if err := req.Validate(); err != nil {
				return err
			}
			return c.request(cmd, func(ctx context.Context, l *client.Lesedi) error {
				_, err := l.Move(ctx, req)
				return err
			})
		},
	}
}
