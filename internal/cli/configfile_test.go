package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigArgs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grusprc")
	content := "# defaults\n--ignore-case\n\n--max-depth=3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GRUSP_CONFIG_PATH", path)

	args := LoadConfigArgs()
	want := []string{"--ignore-case", "--max-depth=3"}
	if len(args) != len(want) {
		t.Fatalf("got %d args %v, want %v", len(args), args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestLoadConfigArgsMissingFile(t *testing.T) {
	t.Setenv("GRUSP_CONFIG_PATH", filepath.Join(t.TempDir(), "nope"))
	if args := LoadConfigArgs(); args != nil {
		t.Errorf("got %v, want nil for missing config", args)
	}
}
