// Package pipeline applies bias, dark and flat calibration to raw camera
// frames. One calibration set is kept per observing mode and is matched to
// how frames in that mode are taken; there is no per-target configuration.
package pipeline

import (
	"errors"
	"fmt"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/pkg/store"
)

const keyExposure = "EXPOSURE"

// Calibration is the set of reference frames for one mode. The dark is
// bias subtracted and the flat is normalised to unity.
type Calibration struct {
	Bias, Dark, Flat             *store.Frame
	BiasName, DarkName, FlatName string
}

// Validate checks the frames agree in size and that the dark has a usable
// exposure time.
func (c *Calibration) Validate() error {
	if c.Bias == nil || c.Dark == nil || c.Flat == nil {
		return errors.New("calibration set is incomplete")
	}
	if err := sameSize(c.Bias, c.Dark, "dark"); err != nil {
		return err
	}
	if err := sameSize(c.Bias, c.Flat, "flat"); err != nil {
		return err
	}
	exp, err := c.Dark.Float(keyExposure)
	if err != nil {
		return fmt.Errorf("dark %s: %w", c.DarkName, err)
	}
	if exp == 0 {
		return fmt.Errorf("dark %s has zero exposure time", c.DarkName)
	}
	return nil
}

func sameSize(a, b *store.Frame, what string) error {
	if a.Width != b.Width || a.Height != b.Height {
		return fmt.Errorf("%s is %dx%d, want %dx%d", what, b.Width, b.Height, a.Width, a.Height)
	}
	return nil
}

// Reduce returns (raw - bias - (t_raw/t_dark)*dark) / flat pixel by pixel.
// Pixels where the flat is zero are set to zero. The header keeps the raw
// cards and records the calibration frames used.
func Reduce(raw *store.Frame, cal *Calibration) (*store.Frame, error) {
	if err := cal.Validate(); err != nil {
		return nil, err
	}
	if err := sameSize(cal.Bias, raw, "raw frame"); err != nil {
		return nil, err
	}
	rawExp, err := raw.Float(keyExposure)
	if err != nil {
		return nil, fmt.Errorf("raw frame: %w", err)
	}
	darkExp, _ := cal.Dark.Float(keyExposure)
	scale := rawExp / darkExp

	out := &store.Frame{
		Header: append([]v1.FitsHeaderCard(nil), raw.Header...),
		Width:  raw.Width,
		Height: raw.Height,
		Data:   make([]float64, len(raw.Data)),
	}
	for i, v := range raw.Data {
		flat := cal.Flat.Data[i]
		if flat == 0 {
			continue
		}
		out.Data[i] = (v - cal.Bias.Data[i] - scale*cal.Dark.Data[i]) / flat
	}

	out.SetCard(v1.StringCard("L1", "True", "Reduced to level 1"))
	out.SetCard(v1.StringCard("L1BIAS", cal.BiasName, "Bias frame used"))
	out.SetCard(v1.StringCard("L1DARK", cal.DarkName, "Dark frame used"))
	out.SetCard(v1.StringCard("L1FLAT", cal.FlatName, "Flat frame used"))
	return out, nil
}
