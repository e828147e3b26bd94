package options

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

var _ IOptions = (*ClientOptions)(nil)

// ClientOptions address a remote Lesedi or Mookodi service.
type ClientOptions struct {
	Host string `json:"host" mapstructure:"host"`
	Port int    `json:"port" mapstructure:"port"`

	// Timeout bounds the connection attempt and every call.
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

// NewClientOptions returns options for a service on 127.0.0.1:port.
func NewClientOptions(port int) *ClientOptions {
	return &ClientOptions{
		Host:    "127.0.0.1",
		Port:    port,
		Timeout: 5 * time.Second,
	}
}

// Address returns host:port.
func (o *ClientOptions) Address() string {
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

func (o *ClientOptions) Validate() []error {
	var errs []error

	if o.Host == "" {
		errs = append(errs, fmt.Errorf("host must not be empty"))
	}
	if o.Port <= 0 || o.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", o.Port))
	}
	if o.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive"))
	}

	return errs
}

func (o *ClientOptions) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.StringVar(&o.Host, flagName("host", prefixes...), o.Host, "Host name or address of the service.")
	fs.IntVar(&o.Port, flagName("port", prefixes...), o.Port, "TCP port of the service.")
	fs.DurationVar(&o.Timeout, flagName("timeout", prefixes...), o.Timeout, "Connect and call timeout.")
}
