package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// New returns a config with environment variables selected by name prefix
func New(prefix string, trimPrefix bool) *viper.Viper {

	v := viper.New()
	prefix = strings.ToUpper(prefix) + "_"

	for _, pair := range os.Environ() {
		if pos := strings.Index(pair, "="); pos != -1 {
			key := pair[:pos]
			if strings.HasPrefix(key, prefix) {
				newKey := key
				if trimPrefix {
					newKey = strings.TrimPrefix(newKey, prefix)
				}
				v.SetDefault(newKey, pair[pos+1:])
			}
		}
	}

	return v
}

// SetSub inserts map to config
func SetSub(dest, sub *viper.Viper, key string) {
	dest.Set(key, sub.AllSettings())
}

// BindFlags binds the flags to the config keys. Dashes in a flag name
// are replaced by underscores ("pool-size" -> "pool_size"), so flags and
// environment variables share keys. A changed flag overrides the
// environment, a flag default is used only when the key is missing.
func BindFlags(dest *viper.Viper, flagSet *flag.FlagSet) error {

	var err error
	flagSet.VisitAll(func(f *flag.Flag) {
		if err != nil {
			return
		}

		if bindErr := dest.BindPFlag(FlagKey(f.Name), f); bindErr != nil {
			err = errors.Wrapf(bindErr, "bind flag '%s'", f.Name)
		}
	})

	return err
}

// FlagKey returns the config key of the flag name
func FlagKey(name string) string {
	return strings.Replace(strings.ToLower(name), "-", "_", -1)
}
