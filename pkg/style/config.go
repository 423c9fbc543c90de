package style

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/botionplot/pkg/errors"
)

// Load reads a TOML theme file and overlays it onto the Apple theme.
// Keys absent from the file keep their Apple values; unknown keys are
// rejected so that typos do not pass silently.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeNotFound, err, "read theme %s", path)
	}
	return Decode(string(data))
}

// Decode overlays TOML text onto the Apple theme. See Load.
func Decode(text string) (*Theme, error) {
	t := Apple()
	md, err := toml.Decode(text, t)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidTheme, err, "parse theme")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errs.New(errs.ErrCodeInvalidTheme, "unknown theme keys: %s", strings.Join(keys, ", "))
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Encode writes t as TOML.
func Encode(w io.Writer, t *Theme) error {
	if err := toml.NewEncoder(w).Encode(t); err != nil {
		return errs.Wrap(errs.ErrCodeEncode, err, "encode theme")
	}
	return nil
}
