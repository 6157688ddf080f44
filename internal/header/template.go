package header

import "strings"

// Block is the canonical copyright header inserted at the top of source
// files. Verification and insertion must use the same bytes; keep this the
// single definition.
const Block = `# (C) Crown Copyright, Met Office. All rights reserved.
#
# This file is part of 'IMPROVER' and is released under the BSD 3-Clause license.
# See LICENSE in the root of the repository for full licensing details.
`

// Lines returns the template as individual lines, without trailing newlines.
func Lines() []string {
	return strings.Split(strings.TrimSuffix(Block, "\n"), "\n")
}

// isMarkerLine reports whether a line counts as a copyright marker. The
// presence check is case-insensitive even though the full-block match is not.
func isMarkerLine(line string) bool {
	return strings.Contains(strings.ToLower(line), "copyright")
}
