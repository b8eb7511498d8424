package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service *svcConfig
	Engines *engineConfig
}

type svcConfig struct {
	Address        string `envconfig:"OCRDIFF_ADDRESS" default:":8080"`
	MetricsAddress string `envconfig:"OCRDIFF_METRICS_ADDRESS" default:":8081"`
	BaseUrl        string `envconfig:"OCRDIFF_BASE_URL" default:"http://localhost:8080"`
	LogLevel       string `envconfig:"OCRDIFF_LOG_LEVEL" default:"info"`
	UploadFolder   string `envconfig:"OCRDIFF_UPLOAD_FOLDER" default:"uploads"`
	MaxUploadBytes int64  `envconfig:"OCRDIFF_MAX_UPLOAD_BYTES" default:"10485760"`
}

type engineConfig struct {
	ManifestPath       string   `envconfig:"OCRDIFF_ENGINE_MANIFEST" default:""`
	EnableTesseract    bool     `envconfig:"OCRDIFF_ENABLE_TESSERACT" default:"true"`
	TesseractLanguages []string `envconfig:"OCRDIFF_TESSERACT_LANGUAGES" default:"eng"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}
