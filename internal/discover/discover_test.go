package discover

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "lib/main.dart", "void main() {}")
	writeFile(t, root, "lib/src/app.dart", "class App {}")
	writeFile(t, root, "README.md", "# readme")
	writeFile(t, root, "tool/gen.py", "pass")
	writeFile(t, root, ".hidden.dart", "// hidden")

	files, err := Files(root, 0)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	want := []string{
		filepath.Join("lib", "main.dart"),
		filepath.Join("lib", "src", "app.dart"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestFilesSkipsToolingDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "lib/main.dart", "void main() {}")
	writeFile(t, root, "build/gen.dart", "// generated")
	writeFile(t, root, ".dart_tool/pkg.dart", "// cache")
	writeFile(t, root, ".hidden/x.dart", "// hidden")

	files, err := Files(root, 0)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(files) != 1 || !strings.HasSuffix(files[0], "main.dart") {
		t.Errorf("files = %v, want only lib/main.dart", files)
	}
}

func TestFilesSizeLimit(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "small.dart", "void main() {}")
	writeFile(t, root, "big.dart", strings.Repeat("// padding\n", 100))

	files, err := Files(root, 64)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(files) != 1 || files[0] != "small.dart" {
		t.Errorf("files = %v, want only small.dart", files)
	}
}

func TestFilesHonorsGitignore(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, ".gitignore", "generated/\n")
	writeFile(t, root, "lib/main.dart", "void main() {}")
	writeFile(t, root, "generated/stub.dart", "// generated")

	files, err := Files(root, 0)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	for _, f := range files {
		if strings.Contains(f, "generated") {
			t.Errorf("ignored file surfaced: %s", f)
		}
	}
}

func TestFilesSymlinksSkipped(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "real.dart", "void main() {}")

	if err := os.Symlink(filepath.Join(root, "real.dart"), filepath.Join(root, "link.dart")); err != nil {
		t.Skip("symlinks not supported")
	}

	files, err := Files(root, 0)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(files) != 1 || files[0] != "real.dart" {
		t.Errorf("files = %v, want only real.dart", files)
	}
}

func TestFilesEmptyTree(t *testing.T) {
	t.Parallel()

	files, err := Files(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("files = %v, want none", files)
	}
}
