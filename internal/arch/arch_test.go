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

const modPrefix = "github.com/JavierMenRev/softmask2BED/"

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not on PATH")
	}
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	// softmask is the pure core; fasta and writers are leaf I/O layers.
	bans := map[string][]string{
		modPrefix + "internal/softmask": {
			modPrefix + "internal/",
			modPrefix + "cmd/",
		},
		modPrefix + "internal/fasta": {
			modPrefix + "internal/writers", modPrefix + "internal/softmask",
			modPrefix + "internal/cli", modPrefix + "internal/appcore", modPrefix + "internal/app",
			modPrefix + "cmd/",
		},
		modPrefix + "internal/writers": {
			modPrefix + "internal/fasta",
			modPrefix + "internal/cli", modPrefix + "internal/appcore", modPrefix + "internal/app",
			modPrefix + "cmd/",
		},
		modPrefix + "internal/cli": {
			modPrefix + "internal/fasta", modPrefix + "internal/writers",
			modPrefix + "internal/appcore", modPrefix + "internal/app",
			modPrefix + "cmd/",
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
		if !strings.HasPrefix(p.ImportPath, modPrefix) {
			continue
		}
		imp := p.ImportPath
		forbidden, ok := bans[imp]
		if !ok {
			continue
		}
		for _, dep := range p.Imports {
			if !strings.HasPrefix(dep, modPrefix) {
				continue
			}
			for _, ban := range forbidden {
				if strings.HasPrefix(dep, ban) {
					violations = append(violations, imp+" → "+dep)
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
