package kissconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kisslang/kiss/configs"
	"github.com/kisslang/kiss/modes"
	"github.com/reusee/dscope"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, Schema)),
	).Call(func(
		ext SourceExt,
		trace Trace,
		checks Checks,
	) {
		if ext != DefaultSourceExt {
			t.Fatalf("got %v", ext)
		}
		if trace {
			t.Fatal()
		}
		if len(checks) != 0 {
			t.Fatalf("got %v", checks)
		}
	})
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiss.cue")
	if err := os.WriteFile(path, []byte(`
source_ext: "ks"
trace: true
checks: ["a.star", "b.star"]
`), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader([]string{path}, Schema)),
	).Call(func(
		ext SourceExt,
		trace Trace,
		checks Checks,
	) {
		if ext != "ks" {
			t.Fatalf("got %v", ext)
		}
		if !trace {
			t.Fatal()
		}
		if len(checks) != 2 || checks[1] != "b.star" {
			t.Fatalf("got %v", checks)
		}
	})
}

func TestSchemaRejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiss.cue")
	if err := os.WriteFile(path, []byte(`source_ext: ".kiss"`), 0644); err != nil {
		t.Fatal(err)
	}
	loader := configs.NewLoader([]string{path}, Schema)
	var ext string
	if err := loader.AssignFirst("source_ext", &ext); err == nil {
		t.Fatal("should error")
	}
}

func TestConfigsLoader(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "kiss.cue"), []byte(`source_ext: "kl"`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		ext SourceExt,
	) {
		if ext != "kl" {
			t.Fatalf("got %v", ext)
		}
	})
}
