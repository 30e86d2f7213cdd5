// Package config loads liblift configuration: built-in defaults, then a
// liblift.toml recipe file, then LIBLIFT_-prefixed environment
// variables, each layer overriding the previous one.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/liblift/pkg/buildrun"
	"github.com/arthur-debert/liblift/pkg/errors"
)

// Config file names looked up in the working directory when no explicit
// path is given
var configFileNames = []string{".liblift.toml", "liblift.toml"}

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "LIBLIFT_"

// BuildConfig holds the build-step recipe
type BuildConfig struct {
	Steps []buildrun.Step `koanf:"steps" toml:"steps"`
}

// ArchiveConfig holds packaging options
type ArchiveConfig struct {
	// Output is the archive path; empty means <bundle>.tar.xz
	Output string `koanf:"output" toml:"output"`
}

// Config is the effective liblift configuration
type Config struct {
	// SourcePrefix is the package manager install root; only references
	// under it are embedded
	SourcePrefix string `koanf:"source_prefix" toml:"source_prefix"`

	// PlatformTag scopes the bundle's library directory per OS target
	PlatformTag string `koanf:"platform_tag" toml:"platform_tag"`

	// ExtraLibraries are force-embedded in addition to the scanned
	// closure
	ExtraLibraries []string `koanf:"extra_libraries" toml:"extra_libraries"`

	// Otool and InstallNameTool override the platform tool names
	Otool           string `koanf:"otool" toml:"otool"`
	InstallNameTool string `koanf:"install_name_tool" toml:"install_name_tool"`

	Build   BuildConfig   `koanf:"build" toml:"build"`
	Archive ArchiveConfig `koanf:"archive" toml:"archive"`
}

// Load builds the effective configuration. path is an explicit config
// file; when empty, the working directory is searched for the default
// file names, and it is not an error when none exists.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
	} else {
		for _, name := range configFileNames {
			if _, err := os.Stat(name); err == nil {
				if err := k.Load(file.Provider(name), toml.Parser()); err != nil {
					return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", name)
				}
				break
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envToKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envToKey maps LIBLIFT_SOURCE_PREFIX to source_prefix and
// LIBLIFT_BUILD__X to build.x
func envToKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func (c *Config) validate() error {
	if c.SourcePrefix == "" {
		return errors.New(errors.ErrConfigValid, "source_prefix must not be empty")
	}
	if c.PlatformTag == "" {
		return errors.New(errors.ErrConfigValid, "platform_tag must not be empty")
	}
	return nil
}

// MarshalTOML renders the effective configuration as TOML, as shown by
// the config command
func (c *Config) MarshalTOML() ([]byte, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot render config")
	}
	return data, nil
}
