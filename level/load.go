package level

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/nightwatch/logger"
)

// Format is a level file encoding
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

var (
	// ErrUnsupportedFormat is returned for unknown file extensions
	ErrUnsupportedFormat = errors.New("unsupported level format")

	// ErrUnknownDay is returned when a day index is not authored
	ErrUnknownDay = errors.New("unknown day")
)

// FormatOf selects a format by file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
}

// Load reads and decodes a level file, then applies defaults
func Load(path string) (*Definition, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read level")
	}
	def, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	logger.Log.WithFields(logrus.Fields{
		"level": def.ID,
		"days":  len(def.Days),
		"path":  path,
	}).Debug("level loaded")
	return def, nil
}

// Decode parses level data and applies defaults
func Decode(data []byte, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &def)
		if err != nil {
			return nil, errors.Wrap(err, "toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			logger.Log.WithField("keys", undecoded).Warn("level has unknown keys")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrap(err, "yaml")
		}
	default:
		return nil, ErrUnsupportedFormat
	}
	def.ApplyDefaults()
	return &def, nil
}

// LoadRun reads a run snapshot file
func LoadRun(path string) (*Run, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read run")
	}
	var run Run
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &run); err != nil {
			return nil, errors.Wrapf(err, "decode %s", path)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &run); err != nil {
			return nil, errors.Wrapf(err, "decode %s", path)
		}
	}
	return &run, nil
}

// Day returns the authored day by index
func (d *Definition) Day(index int) (*Day, error) {
	for i := range d.Days {
		if d.Days[i].Index == index {
			return &d.Days[i], nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownDay, "index %d", index)
}
