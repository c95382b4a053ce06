package replay

import (
	"bytes"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/sim"
)

// formatVersion is bumped whenever the encoded layout changes
const formatVersion = 1

var (
	// ErrSeedMismatch is returned when a log is replayed against a different battle
	ErrSeedMismatch = errors.New("replay seed does not match definition")

	// ErrVersion is returned for logs written by an incompatible encoder
	ErrVersion = errors.New("unsupported replay version")
)

// CommandKind discriminates Command
type CommandKind uint8

const (
	CommandOrder CommandKind = iota
	CommandAbility
)

// Command is one host command, applied before fixed step number Step+1
type Command struct {
	Step    int64          `msgpack:"step"`
	Kind    CommandKind    `msgpack:"kind"`
	IDs     []sim.EntityID `msgpack:"ids,omitempty"`
	Order   sim.Order      `msgpack:"order"`
	Ability sim.Ability    `msgpack:"ability"`
}

// Header identifies the battle a log belongs to
type Header struct {
	Version  int       `msgpack:"version"`
	BattleID uuid.UUID `msgpack:"battle_id"`
	Seed     uint32    `msgpack:"seed"`
	Day      int       `msgpack:"day"`
	Mode     sim.Mode  `msgpack:"mode"`
	Steps    int64     `msgpack:"steps"`
}

// Log is a complete command recording of one attempt
type Log struct {
	Header   Header    `msgpack:"header"`
	Commands []Command `msgpack:"commands"`
}

// Encode writes the log as msgpack
func Encode(w io.Writer, log Log) error {
	log.Header.Version = formatVersion
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(&log); err != nil {
		return errors.Wrap(err, "encode replay")
	}
	return nil
}

// Decode reads a msgpack log
func Decode(r io.Reader) (Log, error) {
	var log Log
	if err := msgpack.NewDecoder(r).Decode(&log); err != nil {
		return Log{}, errors.Wrap(err, "decode replay")
	}
	if log.Header.Version != formatVersion {
		return Log{}, errors.Wrapf(ErrVersion, "got %d", log.Header.Version)
	}
	return log, nil
}

// Play rebuilds the final state of a recorded attempt
// Commands are applied at their recorded step offsets, so the result matches the live run exactly
func Play(def *sim.CombatDefinition, roster sim.Roster, log Log) (*sim.State, error) {
	if def.Seed != log.Header.Seed || def.DayIndex != log.Header.Day {
		return nil, errors.Wrapf(ErrSeedMismatch, "log %d/%d, definition %d/%d",
			log.Header.Seed, log.Header.Day, def.Seed, def.DayIndex)
	}
	grid := def.Map.Grid()
	s := sim.NewState(def, roster)

	next := 0
	apply := func(step int64) {
		for next < len(log.Commands) && log.Commands[next].Step <= step {
			s = execute(s, log.Commands[next])
			next++
		}
	}
	for step := int64(0); step < log.Header.Steps; step++ {
		apply(step)
		s = sim.Step(s, parameter.StepSeconds, grid, log.Header.Mode)
	}
	apply(log.Header.Steps)
	return s, nil
}

func execute(s *sim.State, c Command) *sim.State {
	switch c.Kind {
	case CommandOrder:
		return sim.IssueOrder(s, c.IDs, c.Order)
	case CommandAbility:
		return sim.CastAbility(s, c.Ability)
	}
	return s
}

// Digest encodes a state canonically so two runs can be compared byte for byte
func Digest(s *sim.State) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(s); err != nil {
		return nil, errors.Wrap(err, "digest state")
	}
	return buf.Bytes(), nil
}
