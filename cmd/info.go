package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/container"
)

var infoCmd = &cobra.Command{
	Use:   "info <bank.bin>",
	Short: "Show the header and file table of a sample bank",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	info, err := container.ReadInfoFile(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Bank: %s\n", args[0])
	fmt.Fprintf(w, "Version: %d\n", info.Version)
	fmt.Fprintf(w, "Files: %d\n", info.FileCount())
	fmt.Fprintf(w, "Sample rate: %d Hz\n", info.SampleRate)
	fmt.Fprintf(w, "Total size: %d bytes\n", info.Size())
	fmt.Fprintf(w, "Total duration: %.2f seconds\n\n", info.TotalDuration())

	for i, e := range info.Entries {
		fmt.Fprintf(w, "  [%d] %-15s offset=%d samples=%d duration=%.2fs\n",
			i, e.DecodedName(), e.Offset, e.SampleCount, e.Duration)
	}
	return nil
}
