package options

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	assert.NoError(t, ValidateAddress("0.0.0.0:9090"))
	assert.NoError(t, ValidateAddress(":9091"))
	assert.Error(t, ValidateAddress("localhost"))
	assert.Error(t, ValidateAddress("localhost:http-alt"))
	assert.Error(t, ValidateAddress("localhost:70000"))
}

func TestClientOptionsPrefixedFlags(t *testing.T) {
	lesedi := NewClientOptions(9090)
	camera := NewClientOptions(9020)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	lesedi.AddFlags(fs, "lesedi")
	camera.AddFlags(fs, "mookodi")

	require.NoError(t, fs.Parse([]string{"--lesedi.host=tcs", "--mookodi.port=9021"}))
	assert.Equal(t, "tcs:9090", lesedi.Address())
	assert.Equal(t, "127.0.0.1:9021", camera.Address())
	assert.Empty(t, lesedi.Validate())
}

func TestMqttOptionsDisabledByDefault(t *testing.T) {
	o := NewMqttOptions()
	assert.False(t, o.Enabled())
	assert.Empty(t, o.Validate())

	o.Broker = "tcp://127.0.0.1:1883"
	o.Site = ""
	assert.Len(t, o.Validate(), 1)
}

func TestStoreOptionsBackend(t *testing.T) {
	o := NewStoreOptions("/var/lib/mookodi")
	assert.Empty(t, o.Validate())

	o.Backend = "tape"
	assert.Len(t, o.Validate(), 1)

	o.Backend = StoreBackendS3
	o.S3.Endpoint = ""
	assert.Len(t, o.Validate(), 1)
}
