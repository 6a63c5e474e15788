package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"unicode"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ReadDataToInterface decodes a JSON or YAML document into T. YAML input is
// converted to JSON first so that only the json struct tags matter.
func ReadDataToInterface[T any](data []byte) (*T, error) {

	var item T

	data = bytes.TrimLeftFunc(data, unicode.IsSpace)

	if len(data) == 0 {
		return nil, fmt.Errorf("no data provided")
	} else if data[0] == '{' || data[0] == '[' {
		logrus.Debugln("Data format detected: JSON")
	} else {
		var yamlData any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			logrus.WithError(err).Errorln("Failed to unmarshal YAML")
			return nil, fmt.Errorf("failed to unmarshal YAML data: %w", err)
		}

		jsonData, err := json.Marshal(yamlData)
		if err != nil {
			logrus.WithError(err).Errorln("Failed to convert YAML to JSON")
			return nil, err
		}
		data = jsonData
	}

	if err := json.Unmarshal(data, &item); err != nil {
		logrus.WithError(err).Errorln("Failed to unmarshal JSON data")
		return nil, fmt.Errorf("failed to unmarshal JSON data: %w", err)
	}

	return &item, nil
}

// ReadFileToInterface reads path and decodes it with ReadDataToInterface.
func ReadFileToInterface[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ReadDataToInterface[T](data)
}
