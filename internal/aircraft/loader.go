package aircraft

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Aircraft []yamlPreset `yaml:"aircraft"`
}

type yamlPreset struct {
	Name      string  `yaml:"name"`
	NLGArm    float64 `yaml:"nlg_arm"`
	LMLGArm   float64 `yaml:"lmlg_arm"`
	RMLGArm   float64 `yaml:"rmlg_arm"`
	LEMAC     float64 `yaml:"lemac"`
	MACLength float64 `yaml:"mac_length"`
}

// LoadFile reads additional aircraft presets from a YAML file so operators
// can carry approved WBM constants without rebuilding the tool.
//
// Format:
//
//	aircraft:
//	  - name: Boeing 737-800
//	    nlg_arm: 93.0
//	    lmlg_arm: 706.822
//	    rmlg_arm: 706.822
//	    lemac: 627.1
//	    mac_length: 155.81
func LoadFile(path string) ([]Preset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset file %s: %w", path, err)
	}

	var yf yamlFile
	dec := yaml.NewDecoder(strings.NewReader(string(b)))
	dec.KnownFields(true)
	if err := dec.Decode(&yf); err != nil {
		return nil, fmt.Errorf("parse preset file %s: %w", path, err)
	}

	presets := make([]Preset, 0, len(yf.Aircraft))
	for i, yp := range yf.Aircraft {
		if strings.TrimSpace(yp.Name) == "" {
			return nil, fmt.Errorf("preset file %s: aircraft[%d]: name is required", path, i)
		}
		presets = append(presets, Preset{
			Name:      yp.Name,
			NLGArm:    yp.NLGArm,
			LMLGArm:   yp.LMLGArm,
			RMLGArm:   yp.RMLGArm,
			LEMAC:     yp.LEMAC,
			MACLength: yp.MACLength,
		})
	}
	return presets, nil
}

// Resolve finds a preset by name, searching file presets first so operator
// data overrides the builtin placeholders.
func Resolve(name string, filePresets []Preset) (Preset, bool) {
	for _, p := range filePresets {
		if p.Name == name {
			return p, true
		}
	}
	return Find(name)
}
