package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/pkg/client"
)

const pollInterval = 500 * time.Millisecond

func (c *cli) cameraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "camera",
		Short: "Operate the Mookodi camera",
	}
	cmd.AddCommand(
		c.cameraCall("binning XBIN YBIN", "Set the CCD binning", 2, func(ctx context.Context, cam *client.Camera, n []int32) error {
			_, err := cam.SetBinning(ctx, &v1.SetBinningRequest{XBin: n[0], YBin: n[1]})
			return err
		}),
		c.cameraCall("window XSTART YSTART XEND YEND", "Read out a window of the CCD", 4, func(ctx context.Context, cam *client.Camera, n []int32) error {
			w := v1.Window{XStart: n[0], YStart: n[1], XEnd: n[2], YEnd: n[3]}
			_, err := cam.SetWindow(ctx, &v1.SetWindowRequest{Window: w})
			return err
		}),
		c.cameraCall("clear-window", "Read out the full CCD", 0, func(ctx context.Context, cam *client.Camera, _ []int32) error {
			_, err := cam.ClearWindow(ctx, &emptypb.Empty{})
			return err
		}),
		c.readoutSpeedCommand(),
		c.gainCommand(),
		c.fitsHeaderCommand(),
		c.cameraCall("expose LENGTH_MS", "Take one exposure and save it", 1, func(ctx context.Context, cam *client.Camera, n []int32) error {
			_, err := cam.StartExpose(ctx, &v1.StartExposeRequest{ExposureLength: n[0], SaveImage: true})
			return err
		}, waitForFrames),
		c.cameraCall("bias", "Take one bias frame", 0, func(ctx context.Context, cam *client.Camera, _ []int32) error {
			_, err := cam.StartMultbias(ctx, &v1.StartMultbiasRequest{ExposureCount: 1})
			return err
		}, waitForFrames),
		c.cameraCall("dark LENGTH_MS", "Take one dark frame", 1, func(ctx context.Context, cam *client.Camera, n []int32) error {
			_, err := cam.StartMultdark(ctx, &v1.StartMultrunRequest{ExposureCount: 1, ExposureLength: n[0]})
			return err
		}, waitForFrames),
		c.cameraCall("multrun COUNT LENGTH_MS", "Take a run of exposures", 2, func(ctx context.Context, cam *client.Camera, n []int32) error {
			_, err := cam.StartMultrun(ctx, &v1.StartMultrunRequest{ExposureCount: n[0], ExposureLength: n[1]})
			return err
		}, waitForFrames),
		c.cameraCall("multbias COUNT", "Take a run of bias frames", 1, func(ctx context.Context, cam *client.Camera, n []int32) error {
			_, err := cam.StartMultbias(ctx, &v1.StartMultbiasRequest{ExposureCount: n[0]})
			return err
		}, waitForFrames),
		c.cameraCall("multdark COUNT LENGTH_MS", "Take a run of dark frames", 2, func(ctx context.Context, cam *client.Camera, n []int32) error {
			_, err := cam.StartMultdark(ctx, &v1.StartMultrunRequest{ExposureCount: n[0], ExposureLength: n[1]})
			return err
		}, waitForFrames),
		c.cameraCall("abort", "Abort the exposure in progress", 0, func(ctx context.Context, cam *client.Camera, _ []int32) error {
			_, err := cam.AbortExposure(ctx, &emptypb.Empty{})
			return err
		}),
		c.cameraCall("cool-down", "Cool the CCD to its target temperature", 0, func(ctx context.Context, cam *client.Camera, _ []int32) error {
			_, err := cam.CoolDown(ctx, &emptypb.Empty{})
			return err
		}),
		c.cameraCall("warm-up", "Warm the CCD up", 0, func(ctx context.Context, cam *client.Camera, _ []int32) error {
			_, err := cam.WarmUp(ctx, &emptypb.Empty{})
			return err
		}),
		c.cameraStateCommand(),
		c.cameraFilenamesCommand(),
	)
	return cmd
}

func parseInts(args []string) ([]int32, error) {
	out := make([]int32, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", a)
		}
		out[i] = int32(v)
	}
	return out, nil
}

type afterCall func(ctx context.Context, cam *client.Camera, w io.Writer) error

// cameraCall builds a command taking nargs integer arguments.
func (c *cli) cameraCall(use, short string, nargs int, call func(context.Context, *client.Camera, []int32) error, after ...afterCall) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInts(args)
			if err != nil {
				return err
			}
			return c.withCamera(cmd.Context(), func(ctx context.Context, cam *client.Camera) error {
				if err := call(ctx, cam, n); err != nil {
					return err
				}
				if len(after) == 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", cmd.Name())
				}
				for _, fn := range after {
					if err := fn(ctx, cam, cmd.OutOrStdout()); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// waitForFrames polls the camera until the exposures finish, then prints the
// saved filenames.
func waitForFrames(ctx context.Context, cam *client.Camera, w io.Writer) error {
	t := time.NewTicker(pollInterval)
	defer t.Stop()
	for {
		st, err := cam.GetState(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}
		if !st.ExposureInProgress {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	names, err := cam.GetImageFilenames(ctx, &emptypb.Empty{})
	if err != nil {
		return err
	}
	for _, n := range names.Filenames {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) readoutSpeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "readout-speed slow|fast",
		Short:     "Set the CCD readout speed",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"slow", "fast"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var speed v1.ReadoutSpeed
			if err := speed.UnmarshalText([]byte(args[0])); err != nil {
				return err
			}
			return c.withCamera(cmd.Context(), func(ctx context.Context, cam *client.Camera) error {
				_, err := cam.SetReadoutSpeed(ctx, &v1.SetReadoutSpeedRequest{Speed: speed})
				return err
			})
		},
	}
}

func (c *cli) gainCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "gain one|two|three",
		Short:     "Set the CCD gain",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"one", "two", "three"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var gain v1.Gain
			if err := gain.UnmarshalText([]byte(args[0])); err != nil {
				return err
			}
			return c.withCamera(cmd.Context(), func(ctx context.Context, cam *client.Camera) error {
				_, err := cam.SetGain(ctx, &v1.SetGainRequest{Gain: gain})
				return err
			})
		},
	}
}

// parseCard builds a header card from the command line.
func parseCard(keyword, value, comment, kind string) (v1.FitsHeaderCard, error) {
	var t v1.FitsCardType
	if err := t.UnmarshalText([]byte(kind)); err != nil {
		return v1.FitsHeaderCard{}, err
	}
	card := v1.FitsHeaderCard{
		Keyword:   strings.ToUpper(keyword),
		ValueType: t,
		Value:     value,
		Comment:   comment,
	}
	return card, card.Validate()
}

func (c *cli) fitsHeaderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fits-header",
		Short: "Edit the FITS header cards written into frames",
	}

	var kind string
	add := &cobra.Command{
		Use:   "add KEYWORD VALUE [COMMENT]",
		Short: "Add a header card",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			comment := ""
			if len(args) == 3 {
				comment = args[2]
			}
			card, err := parseCard(args[0], args[1], comment, kind)
			if err != nil {
				return err
			}
			return c.withCamera(cmd.Context(), func(ctx context.Context, cam *client.Camera) error {
				_, err := cam.AddFitsHeader(ctx, &v1.AddFitsHeaderRequest{Card: card})
				return err
			})
		},
	}
	add.Flags().StringVar(&kind, "type", "string", "Value type: integer, float, string or comment.")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every header card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withCamera(cmd.Context(), func(ctx context.Context, cam *client.Camera) error {
				_, err := cam.ClearFitsHeaders(ctx, &emptypb.Empty{})
				return err
			})
		},
	}

	telescope := &cobra.Command{
		Use:   "telescope",
		Short: "Replace the header cards with the telescope FITS info from Lesedi",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cards []v1.FitsHeaderCard
			err := c.withLesedi(cmd.Context(), func(ctx context.Context, l *client.Lesedi) error {
				var err error
				cards, err = l.GatherFITSInfo(ctx)
				return err
			})
			if err != nil {
				return err
			}
			err = c.withCamera(cmd.Context(), func(ctx context.Context, cam *client.Camera) error {
				_, err := cam.SetFitsHeaders(ctx, &v1.SetFitsHeadersRequest{Cards: cards})
				return err
			})
			if err != nil {
				return err
			}
			return printCards(cmd.OutOrStdout(), cards)
		},
	}

	cmd.AddCommand(add, clearCmd, telescope)
	return cmd
}

func (c *cli) cameraStateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Print the camera state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withCamera(cmd.Context(), func(ctx context.Context, cam *client.Camera) error {
				st, err := cam.GetState(ctx, &emptypb.Empty{})
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), cameraTable(st))
				return err
			})
		},
	}
}

func cameraTable(st *v1.CameraState) *uitable.Table {
	table := uitable.New()
	table.AddRow("EXPOSURE STATE", st.ExposureState.String())
	table.AddRow("IN PROGRESS", yesNo(st.ExposureInProgress))
	if st.ExposureInProgress {
		table.AddRow("FRAME", fmt.Sprintf("%d of %d", st.ExposureIndex+1, st.ExposureCount))
		table.AddRow("ELAPSED", fmt.Sprintf("%d of %d ms", st.ElapsedExposureLength, st.ExposureLength))
	}
	table.AddRow("BINNING", fmt.Sprintf("%dx%d", st.XBin, st.YBin))
	if st.UseWindow {
		w := st.Window
		table.AddRow("WINDOW", fmt.Sprintf("(%d, %d) .. (%d, %d)", w.XStart, w.YStart, w.XEnd, w.YEnd))
	} else {
		table.AddRow("WINDOW", "full frame")
	}
	table.AddRow("READOUT SPEED", st.ReadoutSpeed.String())
	table.AddRow("GAIN", st.Gain.String())
	table.AddRow("CCD TEMPERATURE", strconv.FormatFloat(st.CCDTemperature, 'f', 1, 64))
	return table
}

func (c *cli) cameraFilenamesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "filenames",
		Short: "Print the frames saved by the last run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withCamera(cmd.Context(), func(ctx context.Context, cam *client.Camera) error {
				names, err := cam.GetImageFilenames(ctx, &emptypb.Empty{})
				if err != nil {
					return err
				}
				for _, n := range names.Filenames {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			})
		},
	}
}
