package eventservices

import (
	"fmt"
	"os"

	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
)

const DefaultConfigFile = "src/expiries.yaml"

func LoadExpiryConfig(path string) (*eventmodels.ExpiryConfigYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadExpiryConfig: failed to read %s: %w", path, err)
	}

	config, err := eventmodels.NewExpiryConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("LoadExpiryConfig: %w", err)
	}

	return config, nil
}
