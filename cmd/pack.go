package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mldrummer "github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer"
	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/container"
	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/gen"
	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/pkg/config"
)

var packCmd = &cobra.Command{
	Use:   "pack <folder>",
	Short: "Pack a folder of audio files into a sample bank",
	Long: `Pack decodes every supported audio file in a folder, processes the
clips, and writes one PICO sample bank binary.

Files are packed in sorted filename order, so repeat runs over the
same folder produce byte-identical banks. Files that fail to decode or
decode to nothing are skipped with a warning; the run only fails when
no clip at all survives.`,
	Args: cobra.ExactArgs(1),
	RunE: runPack,
}

func init() {
	rootCmd.AddCommand(packCmd)

	packCmd.Flags().StringP("output", "o", "", "output bank file (default <folder>_bank.bin)")
	packCmd.Flags().Uint32P("rate", "r", 0, "target sample rate in Hz (default from config, 44100)")
	packCmd.Flags().Bool("no-normalize", false, "skip peak normalization")
	packCmd.Flags().Int("max-length", 0, "maximum clip length in milliseconds (0 = unlimited)")
	packCmd.Flags().Bool("stereo", false, "accepted for compatibility; banks always hold mono data")
	packCmd.Flags().StringP("c-defines", "c", "", "also generate a C defines header at this path")
	packCmd.Flags().StringP("script", "s", "", "also generate a picotool loader script at this path")
	packCmd.Flags().StringP("address", "a", "", "flash load address for generated artifacts (default 0x10200000)")
}

func runPack(cmd *cobra.Command, args []string) error {
	folder := args[0]
	if st, err := os.Stat(folder); err != nil || !st.IsDir() {
		return fmt.Errorf("folder %q does not exist", folder)
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		out = filepath.Base(filepath.Clean(folder)) + "_bank.bin"
	}

	opts := mldrummer.PackOptions{
		SampleRate:  config.SampleRate(),
		Normalize:   config.Normalize(),
		MaxLengthMS: config.MaxLengthMS(),
	}
	if rate, _ := cmd.Flags().GetUint32("rate"); rate != 0 {
		opts.SampleRate = rate
	}
	if noNorm, _ := cmd.Flags().GetBool("no-normalize"); noNorm {
		opts.Normalize = false
	}
	if maxLen, _ := cmd.Flags().GetInt("max-length"); maxLen > 0 {
		opts.MaxLengthMS = maxLen
	}
	opts.KeepStereo, _ = cmd.Flags().GetBool("stereo")

	flashAddr := config.FlashAddress()
	if addr, _ := cmd.Flags().GetString("address"); addr != "" {
		parsed, err := parseAddress(addr)
		if err != nil {
			return err
		}
		flashAddr = parsed
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Packing %s -> %s\n", folder, out)
	if opts.MaxLengthMS > 0 {
		fmt.Fprintf(w, "Maximum clip length: %dms\n", opts.MaxLengthMS)
	}

	summary, err := mldrummer.PackDir(folder, out, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nBank created successfully!\n")
	fmt.Fprintf(w, "Output file: %s\n", summary.OutputPath)
	fmt.Fprintf(w, "Total size: %d bytes (%.2f MB)\n", summary.TotalBytes, float64(summary.TotalBytes)/1024/1024)
	fmt.Fprintf(w, "Files included: %d\n", len(summary.Entries))
	fmt.Fprintf(w, "Total duration: %.2f seconds\n", summary.TotalDuration())
	fmt.Fprintf(w, "Sample rate: %d Hz\n", summary.SampleRate)

	if len(summary.Skipped) > 0 {
		fmt.Fprintf(w, "\nSkipped files (%d):\n", len(summary.Skipped))
		for _, s := range summary.Skipped {
			fmt.Fprintf(w, "  - %s: %s\n", filepath.Base(s.Path), s.Reason)
		}
	}
	if len(summary.Truncated) > 0 {
		fmt.Fprintf(w, "\nTruncated files (%d):\n", len(summary.Truncated))
		for _, name := range summary.Truncated {
			fmt.Fprintf(w, "  - %s\n", name)
		}
	}

	fmt.Fprintf(w, "\nFile listing:\n")
	for i, e := range summary.Entries {
		fmt.Fprintf(w, "  [%d] %s: %d samples, %.2fs\n", i, e.DecodedName(), e.SampleCount, e.Duration)
	}

	headerPath, _ := cmd.Flags().GetString("c-defines")
	scriptPath, _ := cmd.Flags().GetString("script")
	if headerPath == "" && scriptPath == "" {
		return nil
	}

	// Artifacts come from re-parsing the bank, not from builder state.
	info, err := container.ReadInfoFile(out)
	if err != nil {
		return err
	}

	if headerPath != "" {
		if err := writeArtifact(headerPath, 0o644, func(f *os.File) error {
			return gen.WriteCHeader(f, filepath.Base(out), info, flashAddr)
		}); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nC defines header: %s\n", headerPath)
	}

	if scriptPath != "" {
		if err := writeArtifact(scriptPath, 0o755, func(f *os.File) error {
			return gen.WriteLoaderScript(f, out, info, flashAddr)
		}); err != nil {
			return err
		}
		fmt.Fprintf(w, "Loader script: %s\n", scriptPath)
	}

	return nil
}

func writeArtifact(path string, mode os.FileMode, write func(*os.File) error) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	// The OpenFile mode only applies when the file is created; an
	// existing artifact keeps its old permissions without this.
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}

// parseAddress accepts hex (0x prefixed) or decimal flash addresses.
func parseAddress(s string) (uint32, error) {
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid flash address %q", s)
	}
	return uint32(v), nil
}
