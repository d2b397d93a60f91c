package scene

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOverride reads a YAML file at path and merges its fields into config,
// letting a scene's camera placement and sample counts be tuned without
// recompiling. Only the fields present in the file are touched; World and
// Lights (tagged yaml:"-") are never affected by an override file.
func LoadOverride(path string, config *SceneConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return newConfigError(err, "read scene override %q", path)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return newConfigError(err, "parse scene override %q", path)
	}
	return nil
}
