// Package manifest records what an embedding run put into a bundle.
// The manifest is written next to the Frameworks directory and is purely
// informational: the loader never reads it, humans and packaging scripts
// do.
package manifest

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/liblift/pkg/bundle"
	"github.com/arthur-debert/liblift/pkg/embedder"
	"github.com/arthur-debert/liblift/pkg/errors"
	"github.com/arthur-debert/liblift/pkg/types"
)

// Library is one embedded library entry
type Library struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
}

// Manifest describes the embedded libraries of a bundle
type Manifest struct {
	PlatformTag  string    `yaml:"platform_tag"`
	SourcePrefix string    `yaml:"source_prefix"`
	GeneratedAt  time.Time `yaml:"generated_at"`
	Libraries    []Library `yaml:"libraries"`
}

// New builds a Manifest from an embedding result
func New(layout bundle.Layout, sourcePrefix string, result *embedder.Result) *Manifest {
	m := &Manifest{
		PlatformTag:  layout.PlatformTag(),
		SourcePrefix: sourcePrefix,
		GeneratedAt:  time.Now().UTC(),
	}
	for _, lib := range result.Libraries {
		m.Libraries = append(m.Libraries, Library{Name: lib.Name, Source: lib.Source})
	}
	return m
}

// Write serializes the manifest to its place in the bundle
func (m *Manifest) Write(fsys types.FS, layout bundle.Layout) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot serialize manifest")
	}

	path := layout.ManifestPath()
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write manifest %s", path)
	}
	return nil
}

// Read loads a bundle's manifest
func Read(fsys types.FS, layout bundle.Layout) (*Manifest, error) {
	data, err := fsys.ReadFile(layout.ManifestPath())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read manifest %s", layout.ManifestPath())
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot parse manifest")
	}
	return &m, nil
}
