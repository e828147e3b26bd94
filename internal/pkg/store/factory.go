package store

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/lesedi-io/lesedi/pkg/options"
)

// New builds the store selected by opts.
func New(ctx context.Context, opts *options.StoreOptions) (Store, error) {
	switch opts.Backend {
	case options.StoreBackendLocal:
		return NewLocal(afero.NewOsFs(), opts.Dir)
	case options.StoreBackendS3:
		return NewS3(ctx, opts.S3)
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
