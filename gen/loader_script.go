// SPDX-License-Identifier: EPL-2.0

package gen

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/container"
)

// WriteLoaderScript renders a bash script that flashes the bank with
// picotool at flashAddr.
func WriteLoaderScript(w io.Writer, binPath string, info *container.Info, flashAddr uint32) error {
	size := info.Size()
	mb := float64(size) / 1024.0 / 1024.0

	var b strings.Builder
	fmt.Fprintf(&b, "#!/bin/bash\n")
	fmt.Fprintf(&b, "# Auto-generated picotool script for multi-audio binary\n")
	fmt.Fprintf(&b, "# Binary file: %s\n", binPath)
	fmt.Fprintf(&b, "# Files: %d, Sample Rate: %d Hz\n", info.FileCount(), info.SampleRate)
	fmt.Fprintf(&b, "# File size: %s bytes (%.2f MB)\n", groupThousands(size), mb)
	fmt.Fprintf(&b, "# Flash address: 0x%08x\n\n", flashAddr)
	fmt.Fprintf(&b, "echo \"Loading multi-audio binary to flash...\"\n")
	fmt.Fprintf(&b, "echo \"File: %s\"\n", binPath)
	fmt.Fprintf(&b, "echo \"Size: %s bytes (%.2f MB)\"\n", groupThousands(size), mb)
	fmt.Fprintf(&b, "echo \"Address: 0x%08x\"\n", flashAddr)
	fmt.Fprintf(&b, "echo \"Files: %d\"\n", info.FileCount())
	fmt.Fprintf(&b, "echo \"\"\n")
	fmt.Fprintf(&b, "picotool load -x %s -o 0x%08x\n", binPath, flashAddr)
	fmt.Fprintf(&b, "echo \"Multi-audio binary loaded successfully!\"\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write loader script: %w", err)
	}
	return nil
}

// groupThousands renders n with comma separators ("4,048").
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)

	start := 0
	if s[0] == '-' {
		start = 1
	}

	var b strings.Builder
	b.WriteString(s[:start])
	for i := start; i < len(s); i++ {
		if i > start && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
