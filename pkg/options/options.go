// Package options holds flag groups shared by the Lesedi binaries.
package options

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// IOptions is implemented by every flag group.
type IOptions interface {
	// Validate checks the values and returns every problem found.
	Validate() []error

	// AddFlags registers the group's flags. Prefixes, when given, are joined
	// with dots and placed in front of the group's own prefix.
	AddFlags(fs *pflag.FlagSet, prefixes ...string)
}

// ValidateAddress checks that addr is a host:port pair with a usable port.
// An empty host is allowed and means every interface.
func ValidateAddress(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("%q is not a valid address: %w", addr, err)
	}

	p, err := strconv.Atoi(port)
	if err != nil || p < 0 || p > 65535 {
		return fmt.Errorf("%q has an invalid port", addr)
	}

	return nil
}

func flagName(name string, prefixes ...string) string {
	if len(prefixes) == 0 {
		return name
	}
	return strings.Join(append(prefixes, name), ".")
}
