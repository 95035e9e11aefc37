package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mldrummer",
	Short: "Sample bank packer for MEMLNaut devices",
	Long: `mldrummer packs a folder of drum samples into a single PICO sample
bank binary ready to flash into a Pi Pico's memory.

Every clip is decoded (WAV, MP3, Ogg Vorbis, AIFF), resampled to one
container-wide rate, downmixed to mono, optionally peak normalized and
length bounded, then written behind a fixed-width file table the
firmware can index directly out of flash.

Companion artifacts (a C defines header and a picotool loader
script) are generated by re-parsing the written bank.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing).
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

func loadConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
