package night

import (
	"github.com/lixenwraith/nightwatch/level"
	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/rng"
)

// PerkOffers draws the perk choices presented after a night
//
// Perks below their stack cap are eligible in declared order. A debug-forced perk leads the
// list. Short pools are backfilled with maxed perks marked stackable. Returns nil once the
// run's perk cap is reached.
func PerkOffers(def *level.Definition, run level.Run, night int) []string {
	perkCap := def.PerkCap
	if perkCap <= 0 {
		perkCap = parameter.DefaultPerkCap
	}
	if run.PerkStacks() >= perkCap {
		return nil
	}
	count := def.OffersPerNight
	if count <= 0 {
		count = parameter.DefaultOffersPerNight
	}

	forced := ""
	if _, ok := def.PerkByID(def.Debug.ForcedPerk); ok {
		forced = def.Debug.ForcedPerk
	}

	var eligible, maxed []string
	for _, p := range def.Perks {
		if p.ID == forced {
			continue
		}
		if p.MaxStacks <= 0 || run.Perks[p.ID] < p.MaxStacks {
			eligible = append(eligible, p.ID)
		} else if p.Stackable {
			maxed = append(maxed, p.ID)
		}
	}

	r := rng.New(rng.DeriveSeed(run.Seed, "perkOffers", night))
	var offers []string
	if forced != "" {
		offers = append(offers, forced)
	}
	offers = append(offers, rng.PickWithoutReplacement(eligible, count-len(offers), r)...)
	if len(offers) < count {
		offers = append(offers, rng.PickWithoutReplacement(maxed, count-len(offers), r)...)
	}
	return offers
}
