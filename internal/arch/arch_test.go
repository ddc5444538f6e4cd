// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not on PATH")
	}
	cmd := exec.Command("go", "list", "-json", "../../...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	// The core stays free of I/O and presentation; loaders and writers never
	// reach back into the CLI or the app.
	bans := map[string][]string{
		"dietinterp/internal/medium": {
			"dietinterp/internal/loader", "dietinterp/internal/qiime", "dietinterp/internal/writers",
			"dietinterp/internal/output", "dietinterp/internal/cli", "dietinterp/internal/app", "dietinterp/cmd/",
		},
		"dietinterp/internal/interp": {
			"dietinterp/internal/loader", "dietinterp/internal/qiime", "dietinterp/internal/writers",
			"dietinterp/internal/output", "dietinterp/internal/cli", "dietinterp/internal/app", "dietinterp/cmd/",
		},
		"dietinterp/internal/loader": {
			"dietinterp/internal/interp", "dietinterp/internal/writers", "dietinterp/internal/output",
			"dietinterp/internal/cli", "dietinterp/internal/app", "dietinterp/cmd/",
		},
		"dietinterp/internal/qiime": {
			"dietinterp/internal/medium", "dietinterp/internal/loader", "dietinterp/internal/cli",
			"dietinterp/internal/app", "dietinterp/cmd/",
		},
		"dietinterp/internal/writers": {
			"dietinterp/internal/loader", "dietinterp/internal/interp",
			"dietinterp/internal/cli", "dietinterp/internal/app", "dietinterp/cmd/",
		},
		"dietinterp/internal/output": {
			"dietinterp/internal/writers", "dietinterp/internal/loader", "dietinterp/internal/interp",
			"dietinterp/internal/cli", "dietinterp/internal/app", "dietinterp/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "dietinterp/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix && !strings.HasPrefix(imp, prefix+"/") {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if dep == ban || strings.HasPrefix(dep, strings.TrimSuffix(ban, "/")+"/") {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
