package plan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

var ErrDiveNotFound = errors.New("dive not found")

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatOf detects the format by file extension, JSON is the default
func FormatOf(file string) Format {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads the dive at index. A file contains either one dive
// or a list of dives in "dives".
func LoadFile(file string, index int) (*Dive, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(data, FormatOf(file), index)
}

// Parse reads and validates the dive at index
func Parse(data []byte, format Format, index int) (*Dive, error) {
	var doc any
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		doc, err = oj.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	node, err := selectDive(doc, index)
	if err != nil {
		return nil, err
	}
	// decoding on top of the defaults keeps values missing in the file
	raw, err := yaml.Marshal(node)
	if err != nil {
		return nil, err
	}
	d := newDive()
	if err := yaml.Unmarshal(raw, d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func selectDive(doc any, index int) (any, error) {
	path := "$"
	if has := jp.MustParseString("$.dives").Get(doc); len(has) > 0 {
		path = fmt.Sprintf("$.dives[%d]", index)
	} else if index != 0 {
		return nil, fmt.Errorf("%w: index %d of single dive", ErrDiveNotFound, index)
	}
	x, err := jp.ParseString(path)
	if err != nil {
		return nil, err
	}
	res := x.Get(doc)
	if len(res) == 0 || res[0] == nil {
		return nil, fmt.Errorf("%w: %s", ErrDiveNotFound, path)
	}
	return res[0], nil
}
