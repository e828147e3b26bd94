package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

var _ IOptions = (*S3Options)(nil)

// S3Options configure the object store used for camera frames.
type S3Options struct {
	Endpoint        string `json:"endpoint" mapstructure:"endpoint"`
	AccessKeyID     string `json:"access-key-id" mapstructure:"access-key-id"`
	SecretAccessKey string `json:"secret-access-key" mapstructure:"secret-access-key"`
	UseSSL          bool   `json:"use-ssl" mapstructure:"use-ssl"`
	BucketName      string `json:"bucket-name" mapstructure:"bucket-name"`
	Region          string `json:"region" mapstructure:"region"`
}

func NewS3Options() *S3Options {
	return &S3Options{
		Endpoint:   "127.0.0.1:9000",
		UseSSL:     false,
		BucketName: "mookodi-frames",
		Region:     "us-east-1",
	}
}

// Validate only checks fields when an endpoint is configured.
func (o *S3Options) Validate() []error {
	errors := []error{}

	if o.Endpoint == "" {
		return errors
	}
	if o.BucketName == "" {
		errors = append(errors, fmt.Errorf("--s3.bucket-name must be set when --s3.endpoint is used"))
	}

	return errors
}

func (o *S3Options) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.StringVar(&o.Endpoint, flagName("s3.endpoint", prefixes...), o.Endpoint, "S3 service endpoint (e.g. minio.local:9000)")
	fs.StringVar(&o.AccessKeyID, flagName("s3.access-key-id", prefixes...), o.AccessKeyID, "S3 access key ID")
	fs.StringVar(&o.SecretAccessKey, flagName("s3.secret-access-key", prefixes...), o.SecretAccessKey, "S3 secret access key")
	fs.BoolVar(&o.UseSSL, flagName("s3.use-ssl", prefixes...), o.UseSSL, "Enable SSL for S3 connection")
	fs.StringVar(&o.BucketName, flagName("s3.bucket-name", prefixes...), o.BucketName, "S3 bucket name for frame storage")
	fs.StringVar(&o.Region, flagName("s3.region", prefixes...), o.Region, "S3 region")
}
