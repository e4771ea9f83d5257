package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/meshviz/internal/config"
	"github.com/san-kum/meshviz/internal/export"
	"github.com/san-kum/meshviz/internal/index"
	"github.com/san-kum/meshviz/internal/mesh"
	"github.com/san-kum/meshviz/internal/render"
	"github.com/san-kum/meshviz/internal/store"
)

var (
	indexPath  string
	dataPath   string
	configFile string
	preset     string

	// export
	outPath      string
	maxTimesteps int

	// render
	framesDir string
	animation string
	maxFrames int
	width     int
	height    int
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	BorderStyle(lipgloss.NormalBorder()).
	Padding(0, 2)

// main registers the export, render, and inspect commands and executes the
// root command, exiting non-zero if a run fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "meshviz",
		Short: "export and render octant-symmetric simulation meshes",
	}

	rootCmd.PersistentFlags().StringVar(&indexPath, "index", "", "XDMF metadata document")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "HDF5 results file")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export selected timesteps to a viewer JSON document",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&outPath, "out", "", "output JSON path")
	exportCmd.Flags().IntVar(&maxTimesteps, "max-timesteps", 0, "timestep selection cap")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render selected timesteps to PNG frames and an optional GIF",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&framesDir, "frames-dir", "", "frames output directory")
	renderCmd.Flags().StringVar(&animation, "animation", "", "animation GIF path (empty disables)")
	renderCmd.Flags().IntVar(&maxFrames, "max-frames", 0, "frame selection cap")
	renderCmd.Flags().IntVar(&width, "width", 0, "frame width in pixels")
	renderCmd.Flags().IntVar(&height, "height", 0, "frame height in pixels")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "summarize the timestep index",
		RunE:  runInspect,
	}
	inspectCmd.Flags().IntVar(&maxTimesteps, "max-timesteps", 0, "timestep selection cap")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(exportCmd, renderCmd, inspectCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file, and CLI flags in increasing
// precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("index") {
		cfg.Index = indexPath
	}
	if cmd.Flags().Changed("data") {
		cfg.Data = dataPath
	}
	if cmd.Flags().Changed("out") {
		cfg.Export.Output = outPath
	}
	if cmd.Flags().Changed("max-timesteps") {
		cfg.Export.MaxTimesteps = maxTimesteps
	}
	if cmd.Flags().Changed("frames-dir") {
		cfg.Render.FramesDir = framesDir
	}
	if cmd.Flags().Changed("animation") {
		cfg.Render.Animation = animation
	}
	if cmd.Flags().Changed("max-frames") {
		cfg.Render.MaxFrames = maxFrames
	}
	if cmd.Flags().Changed("width") {
		cfg.Render.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Render.Height = height
	}

	return cfg, nil
}

func readIndex(cfg *config.Config) ([]index.Timestep, error) {
	fmt.Printf("reading mesh index from: %s\n", cfg.Index)
	steps, err := index.Read(cfg.Index)
	if err != nil {
		return nil, err
	}
	fmt.Printf("found %d timesteps from t=%.2f to t=%.2f\n",
		len(steps), steps[0].Time, steps[len(steps)-1].Time)
	return steps, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	steps, err := readIndex(cfg)
	if err != nil {
		return err
	}

	st, err := store.OpenHDF5(cfg.Data)
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Println("exporting timesteps...")
	summary, err := export.JSON(st, steps, export.Options{
		Path:         cfg.Export.Output,
		MaxTimesteps: cfg.Export.MaxTimesteps,
	})
	if err != nil {
		return err
	}

	fmt.Println(bannerStyle.Render(fmt.Sprintf(
		"EXPORT COMPLETE\ntimesteps: %d of %d\ntime range: %.2fs to %.2fs\noutput: %s (%.1f MB)",
		summary.Exported, summary.Total,
		summary.TimeRange[0], summary.TimeRange[1],
		summary.Path, float64(summary.Bytes)/1024/1024)))
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	steps, err := readIndex(cfg)
	if err != nil {
		return err
	}

	st, err := store.OpenHDF5(cfg.Data)
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Println("rendering frames...")
	summary, err := render.Frames(st, steps, render.Options{
		Dir:       cfg.Render.FramesDir,
		Animation: cfg.Render.Animation,
		MaxFrames: cfg.Render.MaxFrames,
		Width:     cfg.Render.Width,
		Height:    cfg.Render.Height,
		Delay:     cfg.Render.Delay,
		Camera: render.Camera{
			Elev:   cfg.Render.Elev,
			Azim:   cfg.Render.Azim,
			Extent: cfg.Render.Extent,
		},
	})
	if err != nil {
		return err
	}

	msg := fmt.Sprintf(
		"VISUALIZATION COMPLETE\ntime range: %.2fs to %.2fs\nframes: %d\noutput: %s",
		summary.TimeRange[0], summary.TimeRange[1], summary.Frames, summary.Dir)
	if summary.Animation != "" {
		msg += fmt.Sprintf("\nanimation: %s", summary.Animation)
	}
	fmt.Println(bannerStyle.Render(msg))
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	steps, err := readIndex(cfg)
	if err != nil {
		return err
	}

	selected, err := mesh.SampleTimesteps(len(steps), cfg.Export.MaxTimesteps)
	if err != nil {
		return err
	}

	series := make([]float64, len(selected))
	for i, idx := range selected {
		series[i] = steps[idx].Time
	}

	fmt.Printf("selection: %d of %d timesteps (cap %d)\n",
		len(selected), len(steps), cfg.Export.MaxTimesteps)
	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Caption("simulation time per sampled timestep")))
	return nil
}
