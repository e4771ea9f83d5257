package config

// Presets are named export/render profiles. "viewer" matches the web
// viewer's expectations; "preview" trades fidelity for speed.
var Presets = map[string]*Config{
	"viewer": {
		Index: "output/results.xdmf",
		Data:  "output/results.h5",
		Export: ExportConfig{
			Output:       "mesh_data.json",
			MaxTimesteps: 60,
		},
		Render: RenderConfig{
			FramesDir: "output/frames",
			Animation: "output/animation.gif",
			MaxFrames: 30,
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Delay:     DefaultDelay,
			Elev:      DefaultElev,
			Azim:      DefaultAzim,
			Extent:    DefaultExtent,
		},
	},
	"preview": {
		Index: "output/results.xdmf",
		Data:  "output/results.h5",
		Export: ExportConfig{
			Output:       "mesh_preview.json",
			MaxTimesteps: 10,
		},
		Render: RenderConfig{
			FramesDir: "output/frames",
			Animation: "",
			MaxFrames: 8,
			Width:     480,
			Height:    360,
			Delay:     DefaultDelay,
			Elev:      DefaultElev,
			Azim:      DefaultAzim,
			Extent:    DefaultExtent,
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
