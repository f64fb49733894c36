// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/raistlinbot/raistlin/irc/logger"
)

// here's how this works: exported (capitalized) members of the config structs
// are defined in the YAML file and deserialized directly from there. They may
// be postprocessed and overwritten by LoadConfig. Unexported (lowercase) members
// are derived from the exported members in LoadConfig.

const (
	// environment variables of the form RAISTLIN__SECTION__KEY=value
	// override the corresponding config key; value is parsed as YAML
	envPrefix = "RAISTLIN__"

	defaultReadTimeout    = 5 * time.Minute
	defaultWriteTimeout   = 30 * time.Second
	defaultReconnectDelay = 10 * time.Second
	defaultCorpusMaxSize  = "64M"
)

type ReconnectConfig struct {
	MaxAttempts int `yaml:"max-attempts"`
	Delay       time.Duration
}

type ServerConfig struct {
	// host:port, or a ws:// or wss:// URL for a websocket listener
	Address      string
	TLS          bool
	ReadTimeout  time.Duration `yaml:"read-timeout"`
	WriteTimeout time.Duration `yaml:"write-timeout"`
	Reconnect    ReconnectConfig
}

// RegistrationConfig holds the fields of the USER and NICK lines.
type RegistrationConfig struct {
	Nick     string
	User     string
	Mode     string
	Unused   string
	Realname string
}

type WatchConfig struct {
	// compared against the part of the sender before the first '@'
	Author string
	// correct every PRIVMSG regardless of author
	CorrectEveryone bool `yaml:"correct-everyone"`
}

type CorpusConfig struct {
	Path          string
	MaxSizeString string `yaml:"max-size"`
	MaxSize       int64  `yaml:"-"`
}

// FakelagConfig controls pacing of the bot's outgoing messages.
type FakelagConfig struct {
	Enabled           bool
	Window            time.Duration
	BurstLimit        uint `yaml:"burst-limit"`
	MessagesPerWindow uint `yaml:"messages-per-window"`
	Cooldown          time.Duration
}

type HistoryConfig struct {
	// how long a sent correction suppresses an identical one; 0 disables
	DedupeWindow time.Duration `yaml:"dedupe-window"`
}

type DatastoreConfig struct {
	// empty means an in-memory store
	Path string
}

type MetricsConfig struct {
	// empty disables the metrics listener
	Listen string
}

// Config defines the overall configuration.
type Config struct {
	Server       ServerConfig
	Registration RegistrationConfig
	Channel      string
	Watch        WatchConfig
	Corpus       CorpusConfig
	Fakelag      FakelagConfig
	History      HistoryConfig
	Datastore    DatastoreConfig
	Metrics      MetricsConfig
	Logging      []logger.LoggingConfig

	Filename string `yaml:"-"`
}

// LoadRawConfig loads the YAML file and applies environment overrides,
// without validating or postprocessing anything.
func LoadRawConfig(filename string) (config *Config, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config = new(Config)
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// values in a .env next to the config file are visible as overrides,
	// but never replace variables already set in the real environment
	envFile := filepath.Join(filepath.Dir(filename), ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("Could not load %s: %w", envFile, err)
	}

	for _, envPair := range os.Environ() {
		if _, name, err := mungeFromEnvironment(config, envPair); err != nil {
			return nil, fmt.Errorf("Couldn't apply config override `%s`: %w", name, err)
		}
	}

	config.Filename = filename
	return config, nil
}

// LoadConfig loads the given YAML configuration file.
func LoadConfig(filename string) (config *Config, err error) {
	config, err = LoadRawConfig(filename)
	if err != nil {
		return nil, err
	}
	if err = config.prepare(); err != nil {
		return nil, err
	}
	return config, nil
}

// prepare validates the config, fills in defaults and derives the
// unexported fields.
func (config *Config) prepare() (err error) {
	if config.Server.Address == "" {
		return ErrServerAddressMissing
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = defaultReadTimeout
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = defaultWriteTimeout
	}
	if config.Server.Reconnect.MaxAttempts > 0 && config.Server.Reconnect.Delay == 0 {
		config.Server.Reconnect.Delay = defaultReconnectDelay
	}

	reg := &config.Registration
	if reg.Nick == "" {
		return ErrNickMissing
	}
	if reg.User == "" {
		return ErrUserMissing
	}
	// the USER line is positional; mode and unused default the way
	// most clients send them
	if reg.Mode == "" {
		reg.Mode = "0"
	}
	if reg.Unused == "" {
		reg.Unused = "*"
	}
	if reg.Realname == "" {
		reg.Realname = reg.Nick
	}
	for _, field := range []string{reg.Nick, reg.User, reg.Mode, reg.Unused} {
		if strings.ContainsAny(field, " \r\n") {
			return ErrInvalidFieldSpacing
		}
	}

	if config.Channel == "" {
		return ErrChannelMissing
	}
	if config.Watch.Author == "" && !config.Watch.CorrectEveryone {
		return ErrWatchedAuthorMissing
	}

	if config.Corpus.Path == "" {
		return ErrCorpusPathMissing
	}
	// resolve the corpus relative to the config file, not the working directory
	if !filepath.IsAbs(config.Corpus.Path) && config.Filename != "" {
		config.Corpus.Path = filepath.Join(filepath.Dir(config.Filename), config.Corpus.Path)
	}
	if config.Corpus.MaxSizeString == "" {
		config.Corpus.MaxSizeString = defaultCorpusMaxSize
	}
	maxSize, err := bytefmt.ToBytes(config.Corpus.MaxSizeString)
	if err != nil {
		return fmt.Errorf("Could not parse corpus max-size (make sure it only contains whole numbers): %s", err.Error())
	}
	config.Corpus.MaxSize = int64(maxSize)

	if config.Fakelag.Enabled && config.Fakelag.MessagesPerWindow == 0 {
		return ErrFakelagInvalid
	}

	if config.History.DedupeWindow < 0 {
		config.History.DedupeWindow = 0
	}

	config.Logging, err = prepareLogging(config.Logging)
	return err
}

func prepareLogging(configs []logger.LoggingConfig) (result []logger.LoggingConfig, err error) {
	if len(configs) == 0 {
		configs = []logger.LoggingConfig{{
			Method:      "stderr",
			TypeString:  "* -userinput -useroutput",
			LevelString: "info",
		}}
	}

	for _, logConfig := range configs {
		// methods
		methods := make(map[string]bool)
		for _, method := range strings.Split(logConfig.Method, " ") {
			if len(method) > 0 {
				methods[strings.ToLower(method)] = true
			}
		}
		if methods["file"] && logConfig.Filename == "" {
			return nil, ErrLoggerFilenameMissing
		}
		logConfig.MethodFile = methods["file"]
		logConfig.MethodStdout = methods["stdout"]
		logConfig.MethodStderr = methods["stderr"]

		// levels
		level, exists := logger.LogLevelNames[strings.ToLower(logConfig.LevelString)]
		if !exists {
			return nil, fmt.Errorf("Could not translate log level [%s]", logConfig.LevelString)
		}
		logConfig.Level = level

		// types
		logConfig.Types, logConfig.ExcludedTypes = nil, nil
		for _, typeStr := range strings.Split(logConfig.TypeString, " ") {
			if len(typeStr) == 0 {
				continue
			}
			if typeStr == "-" {
				return nil, ErrLoggerExcludeEmpty
			}
			if typeStr[0] == '-' {
				logConfig.ExcludedTypes = append(logConfig.ExcludedTypes, typeStr[1:])
			} else {
				logConfig.Types = append(logConfig.Types, typeStr)
			}
		}
		if len(logConfig.Types) < 1 {
			return nil, ErrLoggerHasNoTypes
		}

		result = append(result, logConfig)
	}
	return result, nil
}

// mungeFromEnvironment applies a single RAISTLIN__SECTION__KEY=value override.
// Path components are matched against yaml keys, with '_' standing in for
// '-'; the value is parsed as YAML into the field's type.
func mungeFromEnvironment(config *Config, envPair string) (applied bool, name string, err error) {
	equalIdx := strings.IndexByte(envPair, '=')
	if equalIdx == -1 {
		return false, "", nil
	}
	name, value := envPair[:equalIdx], envPair[equalIdx+1:]
	if !strings.HasPrefix(name, envPrefix) {
		return false, "", nil
	}

	pathComponents := strings.Split(strings.TrimPrefix(name, envPrefix), "__")
	field := reflect.ValueOf(config).Elem()
	for _, component := range pathComponents {
		key := strings.ToLower(strings.ReplaceAll(component, "_", "-"))
		if field.Kind() != reflect.Struct {
			return false, name, fmt.Errorf("%s does not name a config section", key)
		}
		next, ok := yamlField(field, key)
		if !ok {
			return false, name, fmt.Errorf("couldn't resolve path component %s", key)
		}
		field = next
	}

	target := reflect.New(field.Type())
	if err = yaml.Unmarshal([]byte(value), target.Interface()); err != nil {
		return false, name, err
	}
	field.Set(target.Elem())
	return true, name, nil
}

// yamlField finds the field of structVal that yaml.v2 would decode key into.
func yamlField(structVal reflect.Value, key string) (reflect.Value, bool) {
	structType := structVal.Type()
	for i := 0; i < structType.NumField(); i++ {
		fieldType := structType.Field(i)
		if fieldType.PkgPath != "" {
			continue
		}
		tag := strings.Split(fieldType.Tag.Get("yaml"), ",")[0]
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = strings.ToLower(fieldType.Name)
		}
		if tag == key {
			return structVal.Field(i), true
		}
	}
	return reflect.Value{}, false
}
