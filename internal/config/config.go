package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	HistoryDriverNone     = ""
	HistoryDriverInMemory = "inmemory"
	HistoryDriverSqlite   = "sqlite"
)

type Config struct {
	Server  Server  `yaml:"server" json:"server"` // configuration of the public REST server
	Name    string  `yaml:"name" json:"name"`     // used for OTEL as an application identifier
	Engine  Engine  `yaml:"engine" json:"engine"`
	History History `yaml:"history" json:"history"`
	Tracing Tracing `yaml:"tracing" json:"tracing"`
}

type Server struct {
	Context string `yaml:"context" json:"context" env:"REST_API_CONTEXT" env-default:"/"`
	Addr    string `yaml:"addr" json:"addr" env:"REST_API_ADDR" env-default:":8080"`
}

type Engine struct {
	// MaxPathDepth bounds execution path enumeration in the analyzer
	MaxPathDepth int `yaml:"maxPathDepth" json:"maxPathDepth" env:"ENGINE_MAX_PATH_DEPTH" env-default:"50"`
	// CacheSize sets the number of analysis reports kept in memory
	CacheSize int           `yaml:"cacheSize" json:"cacheSize" env:"ENGINE_CACHE_SIZE" env-default:"128"`
	CacheTTL  time.Duration `yaml:"cacheTtl" json:"cacheTtl" env:"ENGINE_CACHE_TTL" env-default:"10m"`
}

// History configures the validation run store.
type History struct {
	Driver string `yaml:"driver" json:"driver" env:"HISTORY_DRIVER" env-default:"inmemory"`
	Path   string `yaml:"path" json:"path" env:"HISTORY_PATH" env-default:"bpml-history.db"`
}

type Tracing struct {
	Enabled  bool   `yaml:"enabled" json:"enabled" env:"TRACING_ENABLED"`
	Endpoint string `yaml:"endpoint" json:"endpoint" env:"TRACING_ENDPOINT"`
	Name     string `yaml:"name" json:"name" env:"TRACING_NAME"`
	// TransferHeaders lists request headers copied onto spans and the request context
	TransferHeaders []string `yaml:"transferHeaders" json:"transferHeaders" env:"TRACING_TRANSFER_HEADERS"`
}

func (c Config) defaults() Config {
	if c.Name == "" {
		c.Name = "bpml"
	}
	if c.Tracing.Name == "" {
		c.Tracing.Name = c.Name
	}
	return c
}

func InitConfig() Config {
	c := Config{}
	var fileName string
	confFile := os.Getenv("CONFIG_FILE")
	if confFile == "" {
		wd, err := os.Getwd()
		if err != nil {
			panic(err)
		}
		fileName = fmt.Sprintf("%s/conf.yaml", wd)
	} else {
		fileName = confFile
	}
	var err error
	if _, perr := os.Stat(fileName); errors.Is(perr, os.ErrNotExist) {
		err = cleanenv.ReadEnv(&c)
		fmt.Printf("Configuration file %s not found. Reading config from ENV.\n", fileName)
	} else {
		err = cleanenv.ReadConfig(fileName, &c)
	}
	if err != nil {
		fmt.Printf("Error occurred while reading the configuration: %s\n", err)
		panic(err)
	}
	return c.defaults()
}
