// Package store persists camera frames. Frames are JSON documents holding
// the header cards and the pixel data.
package store

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	v1 "github.com/lesedi-io/lesedi/api/v1"
)

// Extension is appended by the camera to every frame name.
const Extension = ".fits"

// ErrNotFound is returned by Load when no frame has the given name.
var ErrNotFound = errors.New("frame not found")

// Frame is a detector image in row-major order.
type Frame struct {
	Header []v1.FitsHeaderCard `json:"header"`
	Width  int                 `json:"width"`
	Height int                 `json:"height"`
	Data   []float64           `json:"data"`
}

// Validate checks that the data matches the dimensions and that every card
// is well formed.
func (f *Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", f.Width, f.Height)
	}
	if len(f.Data) != f.Width*f.Height {
		return fmt.Errorf("frame data has %d pixels, want %d", len(f.Data), f.Width*f.Height)
	}
	for _, c := range f.Header {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Card returns the card with the given keyword.
func (f *Frame) Card(keyword string) (v1.FitsHeaderCard, bool) {
	for _, c := range f.Header {
		if c.Keyword == keyword {
			return c, true
		}
	}
	return v1.FitsHeaderCard{}, false
}

// SetCard replaces the card with the same keyword, or appends it.
func (f *Frame) SetCard(card v1.FitsHeaderCard) {
	for i, c := range f.Header {
		if c.Keyword == card.Keyword {
			f.Header[i] = card
			return
		}
	}
	f.Header = append(f.Header, card)
}

// Float returns the numeric value of a header card.
func (f *Frame) Float(keyword string) (float64, error) {
	c, ok := f.Card(keyword)
	if !ok {
		return 0, fmt.Errorf("header keyword %s not found", keyword)
	}
	return c.Float()
}

// Store saves and loads frames by name.
type Store interface {
	Save(ctx context.Context, name string, f *Frame) error
	Load(ctx context.Context, name string) (*Frame, error)
	// List returns the names of all frames, sorted.
	List(ctx context.Context) ([]string, error)
}

// cleanName rejects names that would escape the store root.
func cleanName(name string) (string, error) {
	n := path.Clean(strings.ReplaceAll(name, "\\", "/"))
	n = strings.TrimPrefix(n, "/")
	if n == "" || n == "." || n == ".." || strings.HasPrefix(n, "../") {
		return "", fmt.Errorf("invalid frame name %q", name)
	}
	return n, nil
}
