package night

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/nightwatch/level"
	"github.com/lixenwraith/nightwatch/sim"
)

// Night bundles what a host needs to fight and preview one night
type Night struct {
	Plan   Plan
	Combat *sim.CombatDefinition
	Roster sim.Roster
	Offers []string
}

// Prepare plans the run's current day and converts it for the simulation
func Prepare(def *level.Definition, run level.Run) (*Night, error) {
	day, err := def.Day(run.DayIndex)
	if err != nil {
		return nil, err
	}
	plan := BuildPlan(def, run, day.Waves)
	cd, err := CombatDefinition(def, run, plan)
	if err != nil {
		return nil, errors.Wrapf(err, "day %d", run.DayIndex)
	}
	return &Night{
		Plan:   plan,
		Combat: cd,
		Roster: Roster(run),
		Offers: PerkOffers(def, run, run.DayIndex),
	}, nil
}
