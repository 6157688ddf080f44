package header

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
)

// Insert rewrites path with the header Block added. A shebang line, if the
// file starts with one, stays the first line and the block goes directly
// after it; otherwise the block goes at the very top. Everything else is
// carried over byte for byte.
//
// The rewrite goes through a sibling temp file that is renamed over the
// original, so an interrupted fix never leaves a truncated target. The temp
// file is removed on every exit path of this call; a successful rename has
// already consumed it.
func Insert(path string, content []byte) (err error) {
	mode := fs.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	var buf bytes.Buffer
	rest := content
	if bytes.HasPrefix(content, []byte("#!")) {
		if i := bytes.IndexByte(content, '\n'); i >= 0 {
			buf.Write(content[:i+1])
			rest = content[i+1:]
		} else {
			// Shebang with no trailing newline; give it one so the block
			// starts on its own line.
			buf.Write(content)
			buf.WriteByte('\n')
			rest = nil
		}
	}
	buf.WriteString(Block)
	buf.Write(rest)

	tmp := path + ".tmp"
	defer func() {
		if rmErr := os.Remove(tmp); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
			err = rmErr
		}
	}()

	if err := os.WriteFile(tmp, buf.Bytes(), mode); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
