// SPDX-License-Identifier: EPL-2.0

// Package gen renders the companion artifacts that ship with a packed
// sample bank: a C defines header for the firmware and a picotool
// loader script. Both are derived by re-parsing the written bank with
// container.ReadInfo rather than from builder state, so generating
// them doubles as a consistency check on the writer.
package gen
