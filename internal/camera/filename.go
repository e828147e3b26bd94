package camera

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lesedi-io/lesedi/internal/pkg/store"
)

// FrameType is the kind of exposure a frame came from.
type FrameType int

const (
	FrameBias FrameType = iota
	FrameDark
	FrameExposure
)

func (t FrameType) String() string {
	switch t {
	case FrameBias:
		return "bias"
	case FrameDark:
		return "dark"
	case FrameExposure:
		return "exposure"
	}
	return "unknown"
}

// HeaderValue is the EXPTYPE card value.
func (t FrameType) HeaderValue() string {
	switch t {
	case FrameBias:
		return "BIAS"
	case FrameDark:
		return "DARK"
	}
	return "EXPOSE"
}

func (t FrameType) letter() string {
	switch t {
	case FrameBias:
		return "b"
	case FrameDark:
		return "d"
	}
	return "e"
}

// Filename is the structured form of
// {inst}_{type}_{yyyymmdd}_{multrun}_{run}_{window}_{pipeline}.fits.
type Filename struct {
	Instrument string
	Type       FrameType
	Date       time.Time
	Multrun    int
	Run        int
	Window     bool
	// Reduced is the pipeline flag: false for raw frames.
	Reduced bool
}

func (f Filename) String() string {
	return fmt.Sprintf("%s_%s_%s_%d_%d_%d_%d%s",
		f.Instrument, f.Type.letter(), f.Date.Format("20060102"),
		f.Multrun, f.Run, flag(f.Window), flag(f.Reduced), store.Extension)
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ParseFilename parses a frame name. Directories in name are ignored.
func ParseFilename(name string) (Filename, error) {
	base := name
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	stem, ok := strings.CutSuffix(base, store.Extension)
	if !ok {
		return Filename{}, fmt.Errorf("%s: not a %s file", name, store.Extension)
	}
	parts := strings.Split(stem, "_")
	if len(parts) != 7 {
		return Filename{}, fmt.Errorf("%s: want 7 fields, got %d", name, len(parts))
	}

	var f Filename
	f.Instrument = parts[0]
	switch parts[1] {
	case "b":
		f.Type = FrameBias
	case "d":
		f.Type = FrameDark
	case "e":
		f.Type = FrameExposure
	default:
		return Filename{}, fmt.Errorf("%s: unknown frame type %q", name, parts[1])
	}

	date, err := time.Parse("20060102", parts[2])
	if err != nil {
		return Filename{}, fmt.Errorf("%s: %w", name, err)
	}
	f.Date = date

	nums := make([]int, 4)
	for i, p := range parts[3:] {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Filename{}, fmt.Errorf("%s: field %d is not a number", name, i+4)
		}
		nums[i] = n
	}
	if nums[2] > 1 || nums[3] > 1 {
		return Filename{}, fmt.Errorf("%s: window and pipeline flags must be 0 or 1", name)
	}
	f.Multrun, f.Run = nums[0], nums[1]
	f.Window, f.Reduced = nums[2] == 1, nums[3] == 1
	return f, nil
}

// ReducedName returns the pipeline output name for a raw frame name, keeping
// its directory.
func ReducedName(name string) (string, error) {
	f, err := ParseFilename(name)
	if err != nil {
		return "", err
	}
	if f.Reduced {
		return "", fmt.Errorf("%s is already reduced", name)
	}
	f.Reduced = true
	dir := ""
	if i := strings.LastIndex(name, "/"); i >= 0 {
		dir = name[:i+1]
	}
	return dir + f.String(), nil
}
