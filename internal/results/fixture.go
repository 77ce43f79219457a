package results

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dtroode/studentportal-server/internal/model"
)

var ErrInvalidFixture = errors.New("invalid results fixture")

type fixtureFile struct {
	Results []model.ResultRecord `yaml:"results"`
}

// LoadFile reads a YAML fixture from path.
func LoadFile(path string) ([]model.ResultRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results fixture: %w", err)
	}
	defer f.Close()

	return LoadYAML(f)
}

// LoadYAML decodes a fixture of the form
//
//	results:
//	  - rollNo: 2024-001
//	    studentName: ...
//	    subjects: [...]
//
// Roll numbers must be present and unique.
func LoadYAML(r io.Reader) ([]model.ResultRecord, error) {
	var file fixtureFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidFixture)
		}
		return nil, fmt.Errorf("failed to decode results fixture: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Results))
	for i, rec := range file.Results {
		if rec.RollNo == "" {
			return nil, fmt.Errorf("%w: record %d has no roll number", ErrInvalidFixture, i+1)
		}
		if _, dup := seen[rec.RollNo]; dup {
			return nil, fmt.Errorf("%w: duplicate roll number %s", ErrInvalidFixture, rec.RollNo)
		}
		seen[rec.RollNo] = struct{}{}
	}

	return file.Results, nil
}
