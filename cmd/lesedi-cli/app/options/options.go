package options

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	cliflag "k8s.io/component-base/cli/flag"

	"github.com/lesedi-io/lesedi/pkg/app"
	"github.com/lesedi-io/lesedi/pkg/client"
	"github.com/lesedi-io/lesedi/pkg/log"
	"github.com/lesedi-io/lesedi/pkg/options"
)

type CLIOptions struct {
	Lesedi      *options.ClientOptions `json:"lesedi" mapstructure:"lesedi"`
	Mookodi     *options.ClientOptions `json:"mookodi" mapstructure:"mookodi"`
	MqttOptions *options.MqttOptions   `json:"mqtt" mapstructure:"mqtt"`
	Log         *log.Options           `json:"log" mapstructure:"log"`

	envErrs []error
}

var _ app.NamedFlagSetOptions = (*CLIOptions)(nil)

// NewCLIOptions returns the defaults, overridden by LESEDI_HOST, LESEDI_PORT,
// MOOKODI_HOST and MOOKODI_PORT from the environment or a .env file.
func NewCLIOptions() *CLIOptions {
	_ = godotenv.Load()

	o := &CLIOptions{
		Lesedi:      options.NewClientOptions(client.DefaultLesediPort),
		Mookodi:     options.NewClientOptions(client.DefaultCameraPort),
		MqttOptions: options.NewMqttOptions(),
		Log:         log.NewOptions(),
	}
	o.Log.Level = "warn"
	o.Log.OutputPaths = []string{"stderr"}
	o.envErrs = append(o.envErrs, fromEnv(o.Lesedi, "LESEDI")...)
	o.envErrs = append(o.envErrs, fromEnv(o.Mookodi, "MOOKODI")...)
	return o
}

func fromEnv(o *options.ClientOptions, prefix string) []error {
	if host := os.Getenv(prefix + "_HOST"); host != "" {
		o.Host = host
	}
	p := os.Getenv(prefix + "_PORT")
	if p == "" {
		return nil
	}
	port, err := strconv.Atoi(p)
	if err != nil {
		return []error{fmt.Errorf("%s_PORT: %w", prefix, err)}
	}
	o.Port = port
	return nil
}

func (o *CLIOptions) Flags() cliflag.NamedFlagSets {
	fss := cliflag.NamedFlagSets{}
	o.Lesedi.AddFlags(fss.FlagSet("lesedi"), "lesedi")
	o.Mookodi.AddFlags(fss.FlagSet("mookodi"), "mookodi")
	o.MqttOptions.AddFlags(fss.FlagSet("mqtt"))
	o.Log.AddFlags(fss.FlagSet("log"))
	return fss
}

func (o *CLIOptions) Complete() error {
	if o.MqttOptions.ClientID == "" {
		o.MqttOptions.ClientID = fmt.Sprintf("lesedi-cli-%d", os.Getpid())
	}
	return nil
}

func (o *CLIOptions) Validate() error {
	errs := append([]error{}, o.envErrs...)
	errs = append(errs, o.Lesedi.Validate()...)
	errs = append(errs, o.Mookodi.Validate()...)
	errs = append(errs, o.MqttOptions.Validate()...)
	errs = append(errs, o.Log.Validate()...)
	return utilerrors.NewAggregate(errs)
}

func (o *CLIOptions) LogOptions() *log.Options { return o.Log }
