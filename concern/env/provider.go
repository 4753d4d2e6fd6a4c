package env

import (
	"os"

	"github.com/globalmentor/csar"
)

// EnvFile names the environment variable pointing at the TOML property file
// installed as the process-wide default environment. When unset the
// provider contributes nothing.
const EnvFile = "CSAR_ENV_FILE"

func init() {
	csar.RegisterProvider(csar.ProviderFunc(defaultConcerns))
}

func defaultConcerns() ([]csar.Concern, error) {
	path := os.Getenv(EnvFile)
	if path == "" {
		return nil, nil
	}
	environment, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return []csar.Concern{environment}, nil
}
