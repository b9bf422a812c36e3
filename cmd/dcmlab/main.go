package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/dcmlab/internal/audio"
	"github.com/san-kum/dcmlab/internal/config"
	"github.com/san-kum/dcmlab/internal/curves"
	"github.com/san-kum/dcmlab/internal/export"
	"github.com/san-kum/dcmlab/internal/gui"
	"github.com/san-kum/dcmlab/internal/machine"
	"github.com/san-kum/dcmlab/internal/viz"
)

var (
	flux       float64
	speed      float64
	current    float64
	modeName   string
	configFile string
	preset     string
	points     int
	frameMs    int
	hum        bool
	pngDir     string
	sweepKind  string
)

func addStateFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&flux, "flux", config.DefaultFlux, "flux density (T)")
	cmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "angular speed (rad/s)")
	cmd.Flags().Float64Var(&current, "current", config.DefaultCurrent, "armature current (A)")
	cmd.Flags().StringVar(&modeName, "mode", "generator", "generator or motor")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "dcmlab",
		Short: "interactive DC machine visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args)
		},
	}
	addStateFlags(rootCmd)
	rootCmd.PersistentFlags().IntVar(&points, "points", config.DefaultPoints, "sweep resolution")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive terminal view",
		RunE:  runView,
	}
	addStateFlags(viewCmd)
	viewCmd.Flags().IntVar(&frameMs, "frame-ms", config.DefaultFrameMs, "animation frame interval")
	viewCmd.Flags().BoolVar(&hum, "hum", false, "synthesize machine hum")
	rootCmd.Flags().IntVar(&frameMs, "frame-ms", config.DefaultFrameMs, "animation frame interval")
	rootCmd.Flags().BoolVar(&hum, "hum", false, "synthesize machine hum")

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "one-shot machine readings",
		RunE:  runCalc,
	}
	addStateFlags(calcCmd)

	curvesCmd := &cobra.Command{
		Use:   "curves",
		Short: "plot the operating curves",
		RunE:  runCurves,
	}
	addStateFlags(curvesCmd)
	curvesCmd.Flags().StringVar(&pngDir, "png", "", "write PNG charts into this directory")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "export a curve sweep as CSV",
		RunE:  runSweep,
	}
	addStateFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepKind, "kind", "speed", "speed or current")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "hardware-accelerated 3D view",
		RunE:  runGUI,
	}
	addStateFlags(guiCmd)
	guiCmd.Flags().BoolVar(&hum, "hum", false, "synthesize machine hum")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s %s  B=%.2fT  w=%.0frad/s  I=%.1fA\n",
					name, p.Mode, p.FluxDensity, p.Speed, p.ArmatureCurrent)
			}
		},
	}

	rootCmd.AddCommand(viewCmd, calcCmd, curvesCmd, sweepCmd, guiCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildState resolves the launch state: preset, then config file, then
// explicit flags on top.
func buildState(cmd *cobra.Command) (*machine.State, *config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		// Copy so flag overrides below do not write into the preset table.
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("flux") {
		cfg.FluxDensity = flux
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("current") {
		cfg.ArmatureCurrent = current
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = modeName
	}
	if cmd.Flags().Changed("points") {
		cfg.SweepPoints = points
	} else if cfg.SweepPoints < 2 {
		cfg.SweepPoints = config.DefaultPoints
	}

	s, err := cfg.Apply()
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

func runView(cmd *cobra.Command, args []string) error {
	s, cfg, err := buildState(cmd)
	if err != nil {
		return err
	}

	var h *audio.Hum
	if hum || cfg.Hum {
		h = audio.NewHum()
		if err := h.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "audio unavailable: %v\n", err)
			h = nil
		} else {
			defer h.Stop()
		}
	}

	ms := cfg.FrameMs
	if cmd.Flags().Changed("frame-ms") {
		ms = frameMs
	}
	if h != nil {
		return viz.RunLive(s, ms, cfg.SweepPoints, h)
	}
	return viz.RunLive(s, ms, cfg.SweepPoints, nil)
}

func runCalc(cmd *cobra.Command, args []string) error {
	s, _, err := buildState(cmd)
	if err != nil {
		return err
	}
	r := machine.Compute(s)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "mode\t%s\n", s.Mode())
	fmt.Fprintf(w, "flux density\t%.2f T\n", s.FluxDensity())
	fmt.Fprintf(w, "speed\t%.2f rad/s\n", s.Speed())
	fmt.Fprintf(w, "armature current\t%.2f A\n", s.ArmatureCurrent())
	fmt.Fprintf(w, "EMF\t%.4f V\n", r.EMF)
	fmt.Fprintf(w, "torque\t%.4f N.m\n", r.Torque)
	fmt.Fprintf(w, "power\t%.4f W\n", r.Power)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println("\n" + r.EquationText(s))
	return nil
}

func runCurves(cmd *cobra.Command, args []string) error {
	s, cfg, err := buildState(cmd)
	if err != nil {
		return err
	}
	sp, cu := curves.Both(s, cfg.SweepPoints)

	if pngDir != "" {
		if err := export.SaveCurvePNG(sp, filepath.Join(pngDir, "emf_speed.png")); err != nil {
			return err
		}
		if err := export.SaveCurvePNG(cu, filepath.Join(pngDir, "torque_current.png")); err != nil {
			return err
		}
		fmt.Printf("wrote %s and %s\n",
			filepath.Join(pngDir, "emf_speed.png"),
			filepath.Join(pngDir, "torque_current.png"))
		return nil
	}

	for _, c := range []curves.Curve{sp, cu} {
		graph := asciigraph.Plot(c.Y,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("%s  op %s", c.Title, c.Annotation)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	s, cfg, err := buildState(cmd)
	if err != nil {
		return err
	}

	var c curves.Curve
	switch sweepKind {
	case "speed":
		c = curves.SpeedSweep(s, cfg.SweepPoints)
	case "current":
		c = curves.CurrentSweep(s, cfg.SweepPoints)
	default:
		return fmt.Errorf("unknown sweep kind: %s (want speed or current)", sweepKind)
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	if err := w.Write([]string{c.XLabel, c.YLabel}); err != nil {
		return err
	}
	for i := range c.X {
		row := []string{
			strconv.FormatFloat(c.X[i], 'f', 6, 64),
			strconv.FormatFloat(c.Y[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	s, _, err := buildState(cmd)
	if err != nil {
		return err
	}

	var h *audio.Hum
	if hum {
		h = audio.NewHum()
		if err := h.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "audio unavailable: %v\n", err)
			h = nil
		} else {
			defer h.Stop()
		}
	}

	if h != nil {
		gui.Run(s, h)
	} else {
		gui.Run(s, nil)
	}
	return nil
}
