package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxTimesteps = 60
	DefaultMaxFrames    = 30
	DefaultWidth        = 960
	DefaultHeight       = 720
	DefaultDelay        = 20 // 100ths of a second per animation frame
	DefaultElev         = 20.0
	DefaultAzim         = 45.0
	DefaultExtent       = 1.2
)

type Config struct {
	Index  string       `yaml:"index"`
	Data   string       `yaml:"data"`
	Export ExportConfig `yaml:"export"`
	Render RenderConfig `yaml:"render"`
}

type ExportConfig struct {
	Output       string `yaml:"output"`
	MaxTimesteps int    `yaml:"max_timesteps"`
}

type RenderConfig struct {
	FramesDir string  `yaml:"frames_dir"`
	Animation string  `yaml:"animation"`
	MaxFrames int     `yaml:"max_frames"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Delay     int     `yaml:"delay"`
	Elev      float64 `yaml:"elev"`
	Azim      float64 `yaml:"azim"`
	Extent    float64 `yaml:"extent"`
}

func DefaultConfig() *Config {
	return &Config{
		Index: "output/results.xdmf",
		Data:  "output/results.h5",
		Export: ExportConfig{
			Output:       "mesh_data.json",
			MaxTimesteps: DefaultMaxTimesteps,
		},
		Render: RenderConfig{
			FramesDir: "output/frames",
			Animation: "output/animation.gif",
			MaxFrames: DefaultMaxFrames,
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Delay:     DefaultDelay,
			Elev:      DefaultElev,
			Azim:      DefaultAzim,
			Extent:    DefaultExtent,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
