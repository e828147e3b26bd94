package rotator

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/lesedi-io/lesedi/pkg/log"
)

const (
	keyCCWLimit = "CCWLimit"
	keyCWLimit  = "CWLimit"

	// formatKeyValue names the servo communicator's file format for viper.
	formatKeyValue = "properties"
)

// Limits is the rotator travel range in degrees.
type Limits struct {
	Min float64
	Max float64
}

func (l Limits) Limits() Limits { return l }

// DefaultLimits apply when the limits file cannot be read.
var DefaultLimits = Limits{Min: 0, Max: 100}

// LimitsFile reads CCWLimit and CWLimit from a key=value file written by the
// servo communicator.
type LimitsFile struct {
	path   string
	v      *viper.Viper
	logger log.Logger

	mu     sync.RWMutex
	limits Limits
}

var _ LimitsSource = (*LimitsFile)(nil)

// LoadLimits reads path from fs. A missing or unreadable file is logged and
// the defaults are used.
func LoadLimits(fs afero.Fs, path string) *LimitsFile {
	codecs := viper.NewCodecRegistry()
	_ = codecs.RegisterCodec(formatKeyValue, keyValueCodec{})

	v := viper.NewWithOptions(viper.WithCodecRegistry(codecs))
	v.SetFs(fs)
	v.SetConfigFile(path)
	v.SetConfigType(formatKeyValue)
	v.SetDefault(keyCCWLimit, DefaultLimits.Min)
	v.SetDefault(keyCWLimit, DefaultLimits.Max)

	f := &LimitsFile{
		path:   path,
		v:      v,
		logger: log.WithName("rotator-limits").WithValues("path", path),
	}
	if err := v.ReadInConfig(); err != nil {
		f.logger.Error(err, "Error while reading rotator limits, using defaults")
	}
	f.update()
	return f
}

// Watch reloads the limits whenever the file changes on disk. It only has an
// effect when the file lives on the OS filesystem.
func (f *LimitsFile) Watch() {
	f.v.OnConfigChange(func(e fsnotify.Event) {
		f.update()
		f.logger.Info("Rotator limits reloaded", "op", e.Op.String(), "limits", f.Limits())
	})
	f.v.WatchConfig()
}

func (f *LimitsFile) Limits() Limits {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.limits
}

func (f *LimitsFile) update() {
	l := Limits{Min: f.v.GetFloat64(keyCCWLimit), Max: f.v.GetFloat64(keyCWLimit)}
	f.mu.Lock()
	f.limits = l
	f.mu.Unlock()
}

// keyValueCodec reads the servo communicator's limits file: one key=value
// pair per line, blank lines and lines starting with # or ! ignored.
type keyValueCodec struct{}

func (keyValueCodec) Decode(b []byte, v map[string]any) error {
	for n, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("line %d: expected key=value, got %q", n+1, line)
		}
		v[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return nil
}

func (keyValueCodec) Encode(v map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%v\n", k, v[k])
	}
	return []byte(b.String()), nil
}
