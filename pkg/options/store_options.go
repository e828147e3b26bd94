package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

var _ IOptions = (*StoreOptions)(nil)

const (
	StoreBackendLocal = "local"
	StoreBackendS3    = "s3"
)

// StoreOptions select where frames are kept. The S3 settings are only used
// with the s3 backend.
type StoreOptions struct {
	Backend string     `json:"backend" mapstructure:"backend"`
	Dir     string     `json:"dir" mapstructure:"dir"`
	S3      *S3Options `json:"s3" mapstructure:"s3"`
}

func NewStoreOptions(dir string) *StoreOptions {
	return &StoreOptions{
		Backend: StoreBackendLocal,
		Dir:     dir,
		S3:      NewS3Options(),
	}
}

func (o *StoreOptions) Validate() []error {
	errors := []error{}

	switch o.Backend {
	case StoreBackendLocal:
		if o.Dir == "" {
			errors = append(errors, fmt.Errorf("--store.dir must be set for the local backend"))
		}
	case StoreBackendS3:
		if o.S3.Endpoint == "" {
			errors = append(errors, fmt.Errorf("--s3.endpoint must be set for the s3 backend"))
		}
		errors = append(errors, o.S3.Validate()...)
	default:
		errors = append(errors, fmt.Errorf("--store.backend must be %q or %q, got %q", StoreBackendLocal, StoreBackendS3, o.Backend))
	}

	return errors
}

func (o *StoreOptions) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.StringVar(&o.Backend, flagName("store.backend", prefixes...), o.Backend, "Frame store backend: local or s3")
	fs.StringVar(&o.Dir, flagName("store.dir", prefixes...), o.Dir, "Directory holding frames for the local backend")
	o.S3.AddFlags(fs, prefixes...)
}
