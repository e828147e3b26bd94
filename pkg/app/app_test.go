package app

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cliflag "k8s.io/component-base/cli/flag"
)

type fakeOptions struct {
	Port      int
	completed bool
	err       error
}

func (o *fakeOptions) Flags() cliflag.NamedFlagSets {
	fss := cliflag.NamedFlagSets{}
	fss.FlagSet("Server").IntVar(&o.Port, "port", 1963, "port")
	return fss
}

func (o *fakeOptions) Complete() error { o.completed = true; return nil }
func (o *fakeOptions) Validate() error { return o.err }

func TestAppRunsAfterValidation(t *testing.T) {
	opts := &fakeOptions{}
	ran := false

	a := NewApp("lesedi-test", "test", WithOptions(opts), WithNoConfig(), WithDefaultValidArgs(),
		WithRunFunc(func() error { ran = true; return nil }))
	a.Command().SetArgs([]string{"--port", "1958"})

	require.NoError(t, a.Command().Execute())
	assert.True(t, ran)
	assert.True(t, opts.completed)
	assert.Equal(t, 1958, opts.Port)
}

func TestAppStopsOnInvalidOptions(t *testing.T) {
	opts := &fakeOptions{err: errors.New("bad port")}
	ran := false

	a := NewApp("lesedi-test", "test", WithOptions(opts), WithNoConfig(),
		WithRunFunc(func() error { ran = true; return nil }))
	a.Command().SetArgs([]string{})

	require.Error(t, a.Command().Execute())
	assert.False(t, ran)
}

func TestDefaultValidArgsRejectsPositional(t *testing.T) {
	a := NewApp("lesedi-test", "test", WithOptions(&fakeOptions{}), WithNoConfig(), WithDefaultValidArgs(),
		WithRunFunc(func() error { return nil }))
	a.Command().SetArgs([]string{"extra"})

	assert.Error(t, a.Command().Execute())
}

func TestEnvPrefix(t *testing.T) {
	assert.Equal(t, "MOOKODI_CAMERA", envPrefix("mookodi-camera"))
}

func TestConfigFormatsInUsageAreReadable(t *testing.T) {
	usage := pflag.Lookup(configFlagName).Usage
	assert.NotContains(t, usage, "HCL")
	assert.NotContains(t, usage, "properties")

	tests := []struct {
		format  string
		file    string
		content string
		key     string
	}{
		{"JSON", "lesedi.json", `{"grpc": {"port": 1958}}`, "grpc.port"},
		{"TOML", "lesedi.toml", "[grpc]\nport = 1958\n", "grpc.port"},
		{"YAML", "lesedi.yaml", "grpc:\n  port: 1958\n", "grpc.port"},
		{"dotenv", "lesedi.env", "PORT=1958\n", "port"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Contains(t, usage, tt.format)

			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/etc/lesedi/"+tt.file, []byte(tt.content), 0o644))
			v := viper.New()
			v.SetFs(fs)
			v.SetConfigFile("/etc/lesedi/" + tt.file)
			require.NoError(t, v.ReadInConfig())
			assert.Equal(t, 1958, v.GetInt(tt.key))
		})
	}
}
