package main

import (
	"fmt"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pitchgrid-io/scalatrix/consonance"
	"github.com/pitchgrid-io/scalatrix/labels"
	"github.com/pitchgrid-io/scalatrix/mos"
	"github.com/pitchgrid-io/scalatrix/scale"
	"github.com/pitchgrid-io/scalatrix/spectrum"
)

var (
	flagNodes    int
	flagRoot     int
	flagBaseFreq float64
	flagMapped   bool
	flagSteps    int
	flagOffset   float64
	flagPartials int
	flagDecay    float64
)

func buildMOS() (*mos.MOS, error) {
	m, err := mos.New(flagA, flagB, flagMode, flagEquave, flagGenerator)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"n": m.N(), "depth": m.Depth(), "period": m.Period(),
	}).Debug("MOS derived")
	return m, nil
}

var mosCmd = &cobra.Command{
	Use:   "mos",
	Short: "Report the derived fields of a MOS structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMOS()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintf(w, "steps\t%dL %ds (n=%d)\n", m.A(), m.B(), m.N())
		fmt.Fprintf(w, "primitive\t%dL %ds ×%d\n", m.A0(), m.B0(), m.Repetitions())
		fmt.Fprintf(w, "mode\t%d\n", m.Mode())
		fmt.Fprintf(w, "depth\t%d\n", m.Depth())
		fmt.Fprintf(w, "generator\t%.6f of period %.6f\n", m.Generator(), m.Period())
		fmt.Fprintf(w, "gen vector\t(%d, %d)\n", m.GenVec().X, m.GenVec().Y)
		fmt.Fprintf(w, "large step\t%.6f at (%d, %d)\n", m.LargeFr(), m.LargeVec().X, m.LargeVec().Y)
		fmt.Fprintf(w, "small step\t%.6f at (%d, %d)\n", m.SmallFr(), m.SmallVec().X, m.SmallVec().Y)
		fmt.Fprintf(w, "chroma\t%.6f\n", m.ChromaFr())
		return w.Flush()
	},
}

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Generate a scale and print its node table",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMOS()
		if err != nil {
			return err
		}
		sc, err := generate(m)
		if err != nil {
			return err
		}
		calc, err := labels.NewCalculator(labels.DefaultOptions())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "idx\tcoord\tlog2fr\tpitch\tname\tdegree")
		for i, n := range sc.Nodes() {
			mark := " "
			if m.NodeInScale(n.NaturalCoord) {
				mark = "*"
			}
			fmt.Fprintf(w, "%d\t(%d,%d)\t%.5f\t%.3f Hz\t%s\t%d%s\n",
				i, n.NaturalCoord.X, n.NaturalCoord.Y,
				n.TuningCoord.X, n.Pitch,
				calc.Normalized(m, n.NaturalCoord, false),
				m.NodeScaleDegree(n.NaturalCoord), mark)
		}
		return w.Flush()
	},
}

func generate(m *mos.MOS) (*scale.Scale, error) {
	if flagMapped {
		return m.GenerateMappedScale(flagSteps, flagOffset, flagBaseFreq, flagNodes, flagRoot)
	}
	return m.GenerateScale(flagBaseFreq, flagNodes, flagRoot)
}

var consonanceCmd = &cobra.Command{
	Use:   "consonance",
	Short: "Rate the consonance of each scale interval against a harmonic timbre",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMOS()
		if err != nil {
			return err
		}
		sc, err := m.GenerateScale(flagBaseFreq, m.N()+1, 0)
		if err != nil {
			return err
		}
		calc, err := labels.NewCalculator(labels.DefaultOptions())
		if err != nil {
			return err
		}

		var intervals []consonance.Interval
		for _, n := range sc.Nodes() {
			intervals = append(intervals, consonance.Interval{
				Name:  calc.Normalized(m, n.NaturalCoord, false),
				Cents: 1200 * n.TuningCoord.X,
			})
		}
		maxCents := 1200 * m.Equave()

		spec := spectrum.Harmonic(flagPartials, flagDecay)
		res := consonance.AnalyzeScale(spec, flagBaseFreq, intervals, maxCents, maxCents)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "interval\tcents\tconsonance")
		for _, iv := range res.Intervals {
			fmt.Fprintf(w, "%s\t%.1f\t%.3f\n", iv.Name, iv.Cents, iv.Consonance)
		}
		fmt.Fprintf(w, "mean\t\t%.3f\n", res.Mean)
		return w.Flush()
	},
}

func init() {
	for _, c := range []*cobra.Command{scaleCmd, consonanceCmd} {
		c.Flags().Float64Var(&flagBaseFreq, "base-freq", 261.6255653006, "root frequency in Hz")
	}
	scaleCmd.Flags().IntVar(&flagNodes, "nodes", 12, "number of nodes to generate")
	scaleCmd.Flags().IntVar(&flagRoot, "root", 5, "root node index")
	scaleCmd.Flags().BoolVar(&flagMapped, "mapped", false, "squeeze the structure into a keyboard window")
	scaleCmd.Flags().IntVar(&flagSteps, "steps", 12, "keyboard window step count (with --mapped)")
	scaleCmd.Flags().Float64Var(&flagOffset, "offset", 0, "keyboard window offset (with --mapped)")
	consonanceCmd.Flags().IntVar(&flagPartials, "partials", 8, "number of harmonic partials")
	consonanceCmd.Flags().Float64Var(&flagDecay, "decay", spectrum.DefaultDecay, "partial amplitude decay")
}
