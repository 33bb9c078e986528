// Package project owns the annotation store: user label names, per-address
// comments, and the rule list that seeds analysis, along with its YAML
// persistence format.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mg-tools/snes65816/pkg/analysis"
)

// ruleKindJumpTable is the only rule kind the YAML grammar names today.
const ruleKindJumpTable = "jumptable"

// ruleDoc is one rule's on-disk shape.
type ruleDoc struct {
	Kind  string `yaml:"kind"`
	At    uint32 `yaml:"at"`
	Count int    `yaml:"count"`
	Long  bool   `yaml:"long"`
}

// document is the full on-disk project file shape.
type document struct {
	Rules      []ruleDoc           `yaml:"rules"`
	Comments   map[string][]string `yaml:"comments,omitempty"`
	LabelNames map[string]string   `yaml:"label_names,omitempty"`
}

// allowedLabelChars is the charset label-name editing enforces.
const allowedLabelChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_."

// Store is the mutable annotation state for one project: rules, comments,
// and user label names, plus a hook that invalidates any cached listing
// whenever a mutator changes state a rendered bank depends on.
type Store struct {
	rules      []analysis.Rule
	comments   map[uint32][]string
	labelNames map[uint32]string
	onChange   func()
}

// New creates an empty Store. onChange, if non-nil, is called after every
// mutation that can affect a rendered listing.
func New(onChange func()) *Store {
	return &Store{
		comments:   make(map[uint32][]string),
		labelNames: make(map[uint32]string),
		onChange:   onChange,
	}
}

// Load reads and parses a project file from path.
func Load(path string, onChange func()) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project: read %s: %w", path, err)
	}
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("project: parse %s: %w", path, err)
	}

	s := New(onChange)
	for _, rd := range doc.Rules {
		if rd.Kind != ruleKindJumpTable {
			continue
		}
		s.rules = append(s.rules, analysis.Rule{Kind: analysis.RuleJumpTable, At: rd.At, Count: rd.Count, Long: rd.Long})
	}
	for key, lines := range doc.Comments {
		addr, err := parseHexAddr(key)
		if err != nil {
			continue
		}
		s.comments[addr] = append([]string(nil), lines...)
	}
	for key, name := range doc.LabelNames {
		addr, err := parseHexAddr(key)
		if err != nil {
			continue
		}
		s.labelNames[addr] = name
	}
	return s, nil
}

// Save serializes the project to path, dropping empty comment entries and
// writing atomically (write to a sibling temp file, then rename).
func (s *Store) Save(path string) error {
	doc := document{
		Comments:   make(map[string][]string),
		LabelNames: make(map[string]string),
	}
	for _, r := range s.rules {
		if r.Kind != analysis.RuleJumpTable {
			continue
		}
		doc.Rules = append(doc.Rules, ruleDoc{Kind: ruleKindJumpTable, At: r.At, Count: r.Count, Long: r.Long})
	}
	for addr, lines := range s.comments {
		if len(lines) == 0 {
			continue
		}
		doc.Comments[formatHexAddr(addr)] = lines
	}
	for addr, name := range s.labelNames {
		doc.LabelNames[formatHexAddr(addr)] = name
	}

	raw, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("project: marshal: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".project-*.tmp")
	if err != nil {
		return fmt.Errorf("project: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("project: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("project: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("project: rename temp file: %w", err)
	}
	return nil
}

// Rules returns the rule list to hand to the analysis engine for ingestion.
func (s *Store) Rules() []analysis.Rule {
	return append([]analysis.Rule(nil), s.rules...)
}

// AddRule appends a rule and invalidates cached listings.
func (s *Store) AddRule(r analysis.Rule) {
	s.rules = append(s.rules, r)
	s.notify()
}

// Name implements label.Overrides: the user-assigned display name for addr.
func (s *Store) Name(addr uint32) (string, bool) {
	name, ok := s.labelNames[addr]
	return name, ok
}

// SetLabelName assigns addr's display name, after sanitizing it to the
// enforced charset. An empty sanitized name clears the override.
func (s *Store) SetLabelName(addr uint32, name string) {
	clean := SanitizeLabelName(name)
	if clean == "" {
		delete(s.labelNames, addr)
	} else {
		s.labelNames[addr] = clean
	}
	s.notify()
}

// Comments returns addr's comment lines, or nil if it has none.
func (s *Store) Comments(addr uint32) []string {
	return s.comments[addr]
}

// AddComment appends one comment line to addr.
func (s *Store) AddComment(addr uint32, line string) {
	s.comments[addr] = append(s.comments[addr], line)
	s.notify()
}

// ClearComments removes every comment line for addr.
func (s *Store) ClearComments(addr uint32) {
	delete(s.comments, addr)
	s.notify()
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// SanitizeLabelName strips every character outside [A-Za-z0-9_.].
func SanitizeLabelName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(allowedLabelChars, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func parseHexAddr(key string) (uint32, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(key, "0x"), "0X")
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("project: bad address key %q: %w", key, err)
	}
	return uint32(v), nil
}

func formatHexAddr(addr uint32) string {
	return fmt.Sprintf("0x%06X", addr)
}

// CommentedAddresses returns every address carrying at least one comment
// line, in ascending order.
func (s *Store) CommentedAddresses() []uint32 {
	out := make([]uint32, 0, len(s.comments))
	for addr, lines := range s.comments {
		if len(lines) > 0 {
			out = append(out, addr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
