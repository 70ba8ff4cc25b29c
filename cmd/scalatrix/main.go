// Command scalatrix is a small host for the library: it prints MOS
// structure reports, generated scale tables and consonance analyses.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.9.0"

var (
	flagA         int
	flagB         int
	flagMode      int
	flagEquave    float64
	flagGenerator float64
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "scalatrix",
	Short: "Microtonal scale generation on a 2D lattice",
	Long: `scalatrix derives Moment-of-Symmetry scale structures, generates and
retunes scales, and rates interval consonance against a timbre.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the scalatrix version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("scalatrix " + version)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagA, "large", 5, "large steps per equave")
	rootCmd.PersistentFlags().IntVar(&flagB, "small", 2, "small steps per equave")
	rootCmd.PersistentFlags().IntVar(&flagMode, "mode", 1, "mode rotation")
	rootCmd.PersistentFlags().Float64Var(&flagEquave, "equave", 1.0, "equave as log2 ratio")
	rootCmd.PersistentFlags().Float64Var(&flagGenerator, "generator", 0.585, "generator as a fraction of the period")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(versionCmd, mosCmd, scaleCmd, consonanceCmd)

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}
