package settings

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

const (
	DefaultTable        = "FileData"
	DefaultRegion       = "us-west-2"
	DefaultBasePort     = 9060
	DefaultFunctionName = "filedata"
)

const (
	EnvConfigFile     = "FILEDATA_CONFIG"
	EnvTable          = "FILEDATA_TABLE"
	EnvDynamoEndpoint = "FILEDATA_DYNAMODB_ENDPOINT"
	EnvDebug          = "FILEDATA_DEBUG"
	EnvRegion         = "AWS_REGION"
	EnvFunctionName   = "AWS_LAMBDA_FUNCTION_NAME"
)

type Config struct {
	Table          string `yaml:"table"`
	Region         string `yaml:"region"`
	DynamoEndpoint string `yaml:"dynamodb-endpoint"`
	IsDebug        bool   `yaml:"debug"`

	// local mode only
	BasePort     int    `yaml:"port"`
	FunctionName string `yaml:"function-name"`
	UseMemory    bool   `yaml:"memory"`
}

func (config *Config) TableName() string {
	return config.Table
}

func (config *Config) Address() string {
	return fmt.Sprintf(":%d", config.BasePort)
}

func DefaultConfig() *Config {
	return &Config{
		Table:        DefaultTable,
		Region:       DefaultRegion,
		BasePort:     DefaultBasePort,
		FunctionName: DefaultFunctionName,
	}
}

// LoadFile overlays the keys present in the YAML file at path onto config.
func LoadFile(path string, config *Config) error {
	logger.Debugf("Loading configuration from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return FileError{path: path, base: err}
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return FileError{path: path, base: err}
	}

	return nil
}

// FromEnvironment builds the configuration used inside the Lambda runtime.
func FromEnvironment(lookup func(string) (string, bool)) (*Config, error) {
	cfg := DefaultConfig()

	if path, ok := lookup(EnvConfigFile); ok && path != "" {
		err := LoadFile(path, cfg)
		if err != nil {
			return nil, err
		}

		if cfg.UseMemory {
			logger.Warnf("Ignoring memory setting from %s outside local mode", path)
			cfg.UseMemory = false
		}
	}

	if v, ok := lookup(EnvTable); ok && v != "" {
		cfg.Table = v
	}

	if v, ok := lookup(EnvRegion); ok && v != "" {
		cfg.Region = v
	}

	if v, ok := lookup(EnvDynamoEndpoint); ok {
		cfg.DynamoEndpoint = v
	}

	if v, ok := lookup(EnvFunctionName); ok && v != "" {
		cfg.FunctionName = v
	}

	if v, ok := lookup(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, EnvError{name: EnvDebug, value: v, base: err}
		}
		cfg.IsDebug = debug
	}

	return cfg, nil
}

// FromFlags builds the configuration for local mode. Values from -config are
// applied first and then overridden by any flag given explicitly.
func FromFlags(name string, args []string) (*Config, string, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	var buf bytes.Buffer
	flags.SetOutput(&buf)

	var path string
	var cfg Config
	flags.StringVar(&path, "config", "", "YAML file with configuration values")
	flags.StringVar(&cfg.Table, "table", DefaultTable, "DynamoDB table receiving file entries")
	flags.StringVar(&cfg.Region, "region", DefaultRegion, "AWS region of the DynamoDB table")
	flags.StringVar(&cfg.DynamoEndpoint, "dynamodb-endpoint", "", "Endpoint URL for DynamoDB, empty for the AWS default")
	flags.BoolVar(&cfg.IsDebug, "debug", false, "Enable debug logging")
	flags.IntVar(&cfg.BasePort, "port", DefaultBasePort, "Port serving the Lambda invoke API")
	flags.StringVar(&cfg.FunctionName, "function-name", DefaultFunctionName, "Function name accepted by the invoke API")
	flags.BoolVar(&cfg.UseMemory, "memory", false, "Keep entries in memory instead of DynamoDB")

	err := flags.Parse(args)
	if err != nil {
		return nil, buf.String(), err
	}

	if path == "" {
		return &cfg, buf.String(), nil
	}

	result := DefaultConfig()
	err = LoadFile(path, result)
	if err != nil {
		return nil, buf.String(), err
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "table":
			result.Table = cfg.Table
		case "region":
			result.Region = cfg.Region
		case "dynamodb-endpoint":
			result.DynamoEndpoint = cfg.DynamoEndpoint
		case "debug":
			result.IsDebug = cfg.IsDebug
		case "port":
			result.BasePort = cfg.BasePort
		case "function-name":
			result.FunctionName = cfg.FunctionName
		case "memory":
			result.UseMemory = cfg.UseMemory
		}
	})

	return result, buf.String(), nil
}
