package app

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/pkg/client"
)

func (c *cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the observatory status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withLesedi(cmd.Context(), func(ctx context.Context, l *client.Lesedi) error {
				s, err := l.GetState(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), statusTable(s))
				return err
			})
		},
	}
}

func (c *cli) fitsInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fits-info",
		Short: "Print the telescope FITS header cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withLesedi(cmd.Context(), func(ctx context.Context, l *client.Lesedi) error {
				cards, err := l.GatherFITSInfo(ctx)
				if err != nil {
					return err
				}
				return printCards(cmd.OutOrStdout(), cards)
			})
		},
	}
}

func printCards(w io.Writer, cards []v1.FitsHeaderCard) error {
	table := uitable.New()
	table.AddRow("KEYWORD", "VALUE", "COMMENT")
	for _, card := range cards {
		table.AddRow(card.Keyword, card.Value, card.Comment)
	}
	_, err := fmt.Fprintln(w, table)
	return err
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func deg(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// statusTable lays out a status snapshot for the terminal.
func statusTable(s *v1.Status) *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 60
	table.Separator = "  "

	table.AddRow("STATE", s.State.String())
	table.AddRow("EMERGENCY STOP", yesNo(s.Stopped))
	if s.LastError != nil {
		table.AddRow("LAST ERROR", fmt.Sprintf("%s/%s: %s", s.LastError.Sequence, s.LastError.Step, s.LastError.Message))
	}
	table.AddRow("")

	table.AddRow("TELESCOPE")
	table.AddRow("  parked", yesNo(s.TelescopeParked))
	table.AddRow("  auto", onOff(s.TelescopeAuto))
	table.AddRow("  alt / az", deg(s.TelescopeAlt)+" / "+deg(s.TelescopeAz))
	table.AddRow("  ra / dec", deg(s.TelescopeRA)+" / "+deg(s.TelescopeDec))
	table.AddRow("  slewing", yesNo(s.TelescopeSlewing))
	table.AddRow("  tracking", fmt.Sprintf("%s (%s)", onOff(s.TelescopeTracking), s.TelescopeTrackingType))
	table.AddRow("  airmass", strconv.FormatFloat(s.Airmass, 'f', 3, 64))
	table.AddRow("  julian date", strconv.FormatFloat(s.JulianDate, 'f', 5, 64))
	table.AddRow("")

	table.AddRow("DOME")
	table.AddRow("  angle", deg(s.DomeAngle))
	table.AddRow("  remote", yesNo(s.DomeRemote))
	table.AddRow("  lockout", yesNo(s.DomeTCSLockout))
	table.AddRow("  shutter open", yesNo(s.DomeShutterOpen))
	table.AddRow("  shutter moving", yesNo(s.DomeShutterMoving))
	table.AddRow("  moving", yesNo(s.DomeMoving))
	table.AddRow("  following", yesNo(s.DomeTracking))
	table.AddRow("  dome lights", onOff(s.DomeLightsOn))
	table.AddRow("  slew lights", onOff(s.SlewLightsOn))
	table.AddRow("")

	table.AddRow("MIRRORS")
	table.AddRow("  covers", coversState(s))
	table.AddRow("  focus", strconv.FormatFloat(s.Focus, 'f', 3, 64))
	table.AddRow("  secondary auto", onOff(s.SecondaryMirrorAuto))
	table.AddRow("  tertiary auto", onOff(s.TertiaryMirrorAuto))
	table.AddRow("  instrument", s.Instrument.String())
	table.AddRow("")

	insts := make([]v1.Instrument, 0, len(s.Rotators))
	for inst := range s.Rotators {
		insts = append(insts, inst)
	}
	sort.Slice(insts, func(i, j int) bool { return insts[i] < insts[j] })
	for _, inst := range insts {
		r := s.Rotators[inst]
		table.AddRow("ROTATOR " + inst.String())
		table.AddRow("  angle", fmt.Sprintf("%s (limits %s .. %s)", deg(r.Angle), deg(r.LimitMin), deg(r.LimitMax)))
		table.AddRow("  tracking", onOff(r.Tracking))
		table.AddRow("  auto", onOff(r.Auto))
		table.AddRow("  at limit", yesNo(r.AtLimit))
	}
	return table
}

func coversState(s *v1.Status) string {
	switch {
	case s.CoversMoving:
		return "moving"
	case s.CoversOpen:
		return "open"
	}
	return "closed"
}
