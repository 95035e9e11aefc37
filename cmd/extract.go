package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/container"
	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/formats/wav"
	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/utils"
)

var extractCmd = &cobra.Command{
	Use:   "extract <bank.bin> <index> <out.wav>",
	Short: "Pull one clip out of a bank as a mono 16-bit WAV",
	Long: `Extract reads a clip straight out of a packed bank, using the table
offsets the way the firmware does, and writes it as a mono 16-bit WAV
for auditioning. Clips are addressed by table index since names are
not required to be unique.`,
	Args: cobra.ExactArgs(3),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[1])
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	info, err := container.ReadInfo(f)
	if err != nil {
		return err
	}

	samples, err := container.ReadSamples(f, info, idx)
	if err != nil {
		return err
	}

	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = utils.Float32ToInt16(s)
	}

	out, err := os.Create(args[2])
	if err != nil {
		return fmt.Errorf("create %s: %w", args[2], err)
	}
	if err := wav.WriteMono16(out, int(info.SampleRate), pcm); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", args[2], err)
	}

	e := info.Entries[idx]
	fmt.Fprintf(cmd.OutOrStdout(), "Extracted [%d] %s: %d samples (%.2fs) -> %s\n",
		idx, e.DecodedName(), e.SampleCount, e.Duration, args[2])
	return nil
}
