// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"motifscan/internal/cli"
)

// Duration accepts Go duration strings ("250ms", "2s") in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Profile is an optional YAML scan profile. Every field maps to one CLI
// flag; values apply only where the corresponding flag was not given on the
// command line, so the precedence is flags > profile > built-in defaults.
type Profile struct {
	ChunkSize      int      `yaml:"chunk-size"`
	ChunkThreshold int      `yaml:"chunk-threshold"`
	Overlap        int      `yaml:"overlap"`
	Threads        int      `yaml:"threads"`
	WindowTimeout  Duration `yaml:"window-timeout"`

	DedupeOverlap     float64 `yaml:"dedupe-overlap"`
	HybridOverlap     float64 `yaml:"hybrid-overlap"`
	ClusterWindow     int     `yaml:"cluster-window"`
	ClusterMinCount   int     `yaml:"cluster-min-count"`
	ClusterMinClasses int     `yaml:"cluster-min-classes"`

	Output string `yaml:"output"`
	Sort   bool   `yaml:"sort"`
	Quiet  bool   `yaml:"quiet"`
}

// Load reads a profile from path. Unknown keys are rejected so a typo in a
// profile fails loudly instead of being silently ignored.
func Load(path string) (*Profile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var p Profile
	dec := yaml.NewDecoder(fh)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &p, nil
}

// Apply copies profile values onto opt for every flag the user did not set
// explicitly. Zero-valued profile fields are left alone so they fall through
// to the engine defaults.
func (p *Profile) Apply(opt *cli.Options) {
	set := func(flag string) bool { return !opt.Explicit[flag] }

	if p.ChunkSize > 0 && set("chunk-size") {
		opt.ChunkSize = p.ChunkSize
	}
	if p.ChunkThreshold > 0 && set("chunk-threshold") {
		opt.ChunkThreshold = p.ChunkThreshold
	}
	if p.Overlap > 0 && set("overlap") {
		opt.Overlap = p.Overlap
	}
	if p.Threads > 0 && set("threads") {
		opt.Threads = p.Threads
	}
	if p.WindowTimeout > 0 && set("window-timeout") {
		opt.WindowTimeout = time.Duration(p.WindowTimeout)
	}
	if p.DedupeOverlap > 0 && set("dedupe-overlap") {
		opt.DedupeOverlap = p.DedupeOverlap
	}
	if p.HybridOverlap > 0 && set("hybrid-overlap") {
		opt.HybridOverlap = p.HybridOverlap
	}
	if p.ClusterWindow > 0 && set("cluster-window") {
		opt.ClusterWindow = p.ClusterWindow
	}
	if p.ClusterMinCount > 0 && set("cluster-min-count") {
		opt.ClusterMinCount = p.ClusterMinCount
	}
	if p.ClusterMinClasses > 0 && set("cluster-min-classes") {
		opt.ClusterMinClasses = p.ClusterMinClasses
	}
	if p.Output != "" && set("output") {
		opt.Output = p.Output
	}
	if p.Sort && set("sort") {
		opt.Sort = true
	}
	if p.Quiet && set("quiet") {
		opt.Quiet = true
	}
}
