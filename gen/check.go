package gen

import (
	"fmt"
	"os"
	"strings"

	"github.com/teranos/nodegen/errors"
	"github.com/teranos/nodegen/schema"
)

// CheckResult holds the result of a staleness check against an existing
// generated file.
type CheckResult struct {
	UpToDate bool
	Path     string
	// Reason describes why the file is stale (missing, content drift).
	Reason string
}

// CheckFile regenerates the binding source in memory and compares it with the
// file at path. The comparison is exact: generation is deterministic, so any
// difference means the file must be regenerated.
func CheckFile(g Generator, s *schema.Schema, path string) (*CheckResult, error) {
	generated := g.GenerateFile(s)

	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &CheckResult{
				UpToDate: false,
				Path:     path,
				Reason:   "output file does not exist",
			}, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	if string(existing) == generated {
		return &CheckResult{UpToDate: true, Path: path}, nil
	}

	return &CheckResult{
		UpToDate: false,
		Path:     path,
		Reason:   describeDrift(string(existing), generated),
	}, nil
}

// describeDrift summarizes where two generated units first diverge.
func describeDrift(existing, generated string) string {
	existingLines := strings.Split(existing, "\n")
	generatedLines := strings.Split(generated, "\n")

	limit := len(existingLines)
	if len(generatedLines) < limit {
		limit = len(generatedLines)
	}

	for i := 0; i < limit; i++ {
		if existingLines[i] != generatedLines[i] {
			return fmt.Sprintf("content differs starting at line %d", i+1)
		}
	}
	return fmt.Sprintf("line count differs: have %d, want %d", len(existingLines), len(generatedLines))
}
