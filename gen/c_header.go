// SPDX-License-Identifier: EPL-2.0

package gen

import (
	"fmt"
	"io"
	"strings"

	"github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/container"
)

// WriteCHeader renders the firmware-facing defines for one bank:
// flash layout constants, the header and entry struct definitions, and
// one index define per packed clip. binName is the bank's file name,
// echoed into the picotool hint comment.
func WriteCHeader(w io.Writer, binName string, info *container.Info, flashAddr uint32) error {
	var b strings.Builder

	fmt.Fprintf(&b, "// Auto-generated multi-audio defines for flash-loaded data\n")
	fmt.Fprintf(&b, "// Files: %d, Sample Rate: %d Hz\n", info.FileCount(), info.SampleRate)
	fmt.Fprintf(&b, "// Load with: picotool load -x %s -o 0x%08x\n\n", binName, flashAddr)
	fmt.Fprintf(&b, "#ifndef MULTI_AUDIO_FLASH_H\n")
	fmt.Fprintf(&b, "#define MULTI_AUDIO_FLASH_H\n\n")
	fmt.Fprintf(&b, "#include <stdint.h>\n\n")

	fmt.Fprintf(&b, "// Flash memory configuration\n")
	fmt.Fprintf(&b, "#define AUDIO_FLASH_ADDRESS    0x%08xU\n", flashAddr)
	fmt.Fprintf(&b, "#define AUDIO_MAGIC            0x%08XU  // '%s'\n", magicWord(), container.Magic)
	fmt.Fprintf(&b, "#define AUDIO_VERSION          %dU\n", info.Version)
	fmt.Fprintf(&b, "#define AUDIO_FILE_COUNT       %dU\n", info.FileCount())
	fmt.Fprintf(&b, "#define AUDIO_SAMPLE_RATE      %dU\n", info.SampleRate)
	fmt.Fprintf(&b, "#define AUDIO_BINARY_SIZE      %dU\n\n", info.Size())

	fmt.Fprintf(&b, "// Binary format structures\n")
	fmt.Fprintf(&b, "typedef struct {\n")
	fmt.Fprintf(&b, "    uint32_t magic;        // '%s' magic number\n", container.Magic)
	fmt.Fprintf(&b, "    uint32_t version;      // Format version\n")
	fmt.Fprintf(&b, "    uint32_t file_count;   // Number of audio files\n")
	fmt.Fprintf(&b, "    uint32_t sample_rate;  // Sample rate in Hz\n")
	fmt.Fprintf(&b, "} audio_header_t;\n\n")

	fmt.Fprintf(&b, "typedef struct {\n")
	fmt.Fprintf(&b, "    char name[16];         // Null-terminated filename\n")
	fmt.Fprintf(&b, "    uint32_t offset;       // Offset to audio data\n")
	fmt.Fprintf(&b, "    uint32_t sample_count; // Number of samples\n")
	fmt.Fprintf(&b, "    float duration;        // Duration in seconds\n")
	fmt.Fprintf(&b, "    uint32_t reserved;     // Reserved for future use\n")
	fmt.Fprintf(&b, "} audio_file_entry_t;\n\n")

	fmt.Fprintf(&b, "// File indices (for easy access)\n")
	for i, e := range info.Entries {
		fmt.Fprintf(&b, "#define AUDIO_%s_INDEX %dU\n", macroName(e.DecodedName()), i)
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "// Base flash address (pointers calculated at runtime)\n")
	fmt.Fprintf(&b, "#define AUDIO_BINARY_BASE      ((const uint8_t*)AUDIO_FLASH_ADDRESS)\n\n")
	fmt.Fprintf(&b, "#endif // MULTI_AUDIO_FLASH_H\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write header file: %w", err)
	}
	return nil
}

// magicWord is the magic as the firmware sees it when reading flash as
// a little-endian uint32.
func magicWord() uint32 {
	m := []byte(container.Magic)
	return uint32(m[0]) | uint32(m[1])<<8 | uint32(m[2])<<16 | uint32(m[3])<<24
}

// macroName makes a clip name usable inside a C identifier.
func macroName(name string) string {
	upper := strings.ToUpper(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, upper)
}
