package sim

import (
	"strconv"

	"github.com/google/uuid"
)

// battleNamespace scopes battle ids generated by this module
var battleNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("nightwatch.battle"))

// CombatResult is the terminal summary handed to the economy layer
type CombatResult struct {
	BattleID     uuid.UUID
	Victory      bool
	Stats        Stats
	BossDefeated bool
	HQHPPercent  float64
}

// BattleID is stable for a (seed, day) pair so replays and results correlate
func BattleID(seed uint32, day int) uuid.UUID {
	name := strconv.FormatUint(uint64(seed), 10) + "/" + strconv.Itoa(day)
	return uuid.NewSHA1(battleNamespace, []byte(name))
}

// Result returns the summary once the battle has left the running status
func Result(s *State) (CombatResult, bool) {
	if s == nil || s.Status == StatusRunning {
		return CombatResult{}, false
	}
	pct := 0.0
	if hq := s.HQ(); hq != nil && hq.MaxHP > 0 {
		pct = max(hq.HP, 0) / hq.MaxHP * 100
	}
	stats := s.Stats
	stats.LostSquads = append([]string(nil), s.Stats.LostSquads...)
	return CombatResult{
		BattleID:     BattleID(s.Def.Seed, s.Def.DayIndex),
		Victory:      s.Status == StatusWon,
		Stats:        stats,
		BossDefeated: s.BossDefeated,
		HQHPPercent:  pct,
	}, true
}
