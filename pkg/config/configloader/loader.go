package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Validator interface {
	Validate() error
}

// Default file names, resolved against the working directory.
const (
	ConfigFile = "config.yaml"
	EnvFile    = ".env"
)

type options struct {
	configFile string
	envFile    string
}

// Option changes where Load looks for its files.
type Option func(*options)

// WithConfigFile reads YAML from path instead of ConfigFile.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configFile = path }
}

// WithEnvFile reads dotenv pairs from path instead of EnvFile.
func WithEnvFile(path string) Option {
	return func(o *options) { o.envFile = path }
}

// Load builds T from three layers, each overriding the previous one: the YAML file,
// the dotenv file and the process environment. Missing files are skipped.
// Environment keys use the <SERVICENAME>_ prefix and map underscores to dots,
// so CATALOG_DATABASE_URL sets database.url.
func Load[T Validator](serviceName string, opts ...Option) (T, error) {
	var cfg T
	o := options{configFile: ConfigFile, envFile: EnvFile}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	prefix := strings.ToUpper(serviceName) + "_"
	toKey := func(name string) string {
		name = strings.TrimPrefix(strings.ToUpper(name), prefix)
		return strings.ReplaceAll(strings.ToLower(name), "_", ".")
	}

	if err := k.Load(file.Provider(o.configFile), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("WARN: error loading YAML config file '%s': %v", o.configFile, err)
	}

	if pairs, err := godotenv.Read(o.envFile); err == nil {
		values := make(map[string]any, len(pairs))
		for name, value := range pairs {
			values[toKey(name)] = value
		}
		if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
			log.Printf("WARN: error loading %s: %v", o.envFile, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Printf("WARN: error reading %s: %v", o.envFile, err)
	}

	if err := k.Load(env.Provider(prefix, ".", toKey), nil); err != nil {
		log.Printf("WARN: error loading system env vars: %v", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
