package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/scottcagno/hashmap"
	"github.com/scottcagno/hashmap/pkg/hash/strhash"
	"github.com/scottcagno/hashmap/pkg/hashmap/chained"
	"github.com/scottcagno/hashmap/pkg/hashmap/openaddr"
	"github.com/scottcagno/hashmap/pkg/logging"
	"gopkg.in/yaml.v2"
)

const (
	VariantOpenAddr = "openaddr"
	VariantChained  = "chained"
)

// environment variables consulted by Load
const (
	EnvVariant  = "HASHMAP_VARIANT"
	EnvCapacity = "HASHMAP_CAPACITY"
	EnvHash     = "HASHMAP_HASH"
	EnvLogLevel = "HASHMAP_LOG_LEVEL"
)

var (
	ErrBadVariant  = errors.New("config: variant must be openaddr or chained")
	ErrBadCapacity = errors.New("config: capacity must be at least one")
)

// Config selects and sizes the table built by NewMap
type Config struct {
	Variant  string `yaml:"variant"`
	Capacity int    `yaml:"capacity"`
	Hash     string `yaml:"hash"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when nothing else is given
func Default() *Config {
	return &Config{
		Variant:  VariantChained,
		Capacity: chained.DefaultCapacity,
		Hash:     "xxhash",
		LogLevel: "info",
	}
}

// Load starts from Default and layers, in order, the YAML file at path,
// the .env file at envFile and the process environment on top of it.
// Empty paths are skipped. The result is checked before it is returned.
func Load(path, envFile string) (*Config, error) {
	conf := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading config file")
		}
		if err := yaml.Unmarshal(data, conf); err != nil {
			return nil, errors.Wrapf(err, "parsing config file %s", path)
		}
	}
	env := make(map[string]string)
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		if err != nil {
			return nil, errors.Wrap(err, "reading env file")
		}
		env = vals
	}
	for _, key := range []string{EnvVariant, EnvCapacity, EnvHash, EnvLogLevel} {
		if val, ok := os.LookupEnv(key); ok {
			env[key] = val
		}
	}
	if err := conf.applyEnv(env); err != nil {
		return nil, err
	}
	if err := conf.CheckConfig(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) applyEnv(env map[string]string) error {
	if val, ok := env[EnvVariant]; ok {
		c.Variant = val
	}
	if val, ok := env[EnvCapacity]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return errors.Wrapf(err, "%s", EnvCapacity)
		}
		c.Capacity = n
	}
	if val, ok := env[EnvHash]; ok {
		c.Hash = val
	}
	if val, ok := env[EnvLogLevel]; ok {
		c.LogLevel = val
	}
	return nil
}

// CheckConfig validates every field
func (c *Config) CheckConfig() error {
	c.Variant = strings.ToLower(c.Variant)
	if c.Variant != VariantOpenAddr && c.Variant != VariantChained {
		return errors.Wrapf(ErrBadVariant, "got %q", c.Variant)
	}
	if c.Capacity < 1 {
		return errors.Wrapf(ErrBadCapacity, "got %d", c.Capacity)
	}
	if _, err := strhash.Lookup(c.Hash); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// NewMap builds an empty table of the configured variant, capacity and hash
func (c *Config) NewMap() (hashmap.Map[string], error) {
	if err := c.CheckConfig(); err != nil {
		return nil, err
	}
	fn, _ := strhash.Lookup(c.Hash)
	if c.Variant == VariantOpenAddr {
		return openaddr.NewHashMap[string](c.Capacity, fn), nil
	}
	return chained.NewHashMap[string](c.Capacity, fn), nil
}
