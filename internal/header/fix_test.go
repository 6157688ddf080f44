package header

import (
	"os"
	"testing"
)

func TestInsert_NoShebang(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plain.py", "print(\"hi\")\n")

	if err := Insert(path, []byte("print(\"hi\")\n")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if got, want := readFile(t, path), Block+"print(\"hi\")\n"; got != want {
		t.Fatalf("content mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestInsert_ShebangStaysFirst(t *testing.T) {
	original := "#!/usr/bin/env python\nimport os\nprint(os.name)\n"
	path := writeFile(t, t.TempDir(), "script.py", original)

	if err := Insert(path, []byte(original)); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	want := "#!/usr/bin/env python\n" + Block + "import os\nprint(os.name)\n"
	if got := readFile(t, path); got != want {
		t.Fatalf("content mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestInsert_ShebangWithoutTrailingNewline(t *testing.T) {
	path := writeFile(t, t.TempDir(), "script.sh", "#!/bin/sh")

	if err := Insert(path, []byte("#!/bin/sh")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if got, want := readFile(t, path), "#!/bin/sh\n"+Block; got != want {
		t.Fatalf("content mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestInsert_PreservesPermissions(t *testing.T) {
	path := writeFile(t, t.TempDir(), "script.sh", "#!/bin/sh\necho hi\n")
	if err := os.Chmod(path, 0o755); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if err := Insert(path, []byte("#!/bin/sh\necho hi\n")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o755 {
		t.Fatalf("permissions = %v, want %v", got, os.FileMode(0o755))
	}
}

func TestInsert_LeavesNoTempFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plain.py", "x = 1\n")

	if err := Insert(path, []byte("x = 1\n")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected %s.tmp to be gone, stat err = %v", path, err)
	}
}
