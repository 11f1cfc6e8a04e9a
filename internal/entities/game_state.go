package entities

// MaxSpellLevel is the highest spell level tracked.
const MaxSpellLevel = 9

// SpellSlots holds one counter per spell level.
type SpellSlots struct {
	Level1 int32
	Level2 int32
	Level3 int32
	Level4 int32
	Level5 int32
	Level6 int32
	Level7 int32
	Level8 int32
	Level9 int32
}

// NewSpellSlots builds SpellSlots from a row indexed by spell level - 1.
func NewSpellSlots(row [MaxSpellLevel]int32) SpellSlots {
	var s SpellSlots
	for i, n := range row {
		s.Set(i+1, n)
	}
	return s
}

// Array returns the counters indexed by spell level - 1.
func (s SpellSlots) Array() [MaxSpellLevel]int32 {
	var out [MaxSpellLevel]int32
	for i, p := range s.fields() {
		out[i] = *p
	}
	return out
}

// Get returns the counter for a spell level in [1,9], 0 otherwise.
func (s SpellSlots) Get(level int) int32 {
	if level < 1 || level > MaxSpellLevel {
		return 0
	}
	return *s.fields()[level-1]
}

// Set updates the counter for a spell level in [1,9]; other levels are ignored.
func (s *SpellSlots) Set(level int, n int32) {
	if level < 1 || level > MaxSpellLevel {
		return
	}
	*s.fields()[level-1] = n
}

func (s *SpellSlots) fields() [MaxSpellLevel]*int32 {
	return [MaxSpellLevel]*int32{
		&s.Level1, &s.Level2, &s.Level3,
		&s.Level4, &s.Level5, &s.Level6,
		&s.Level7, &s.Level8, &s.Level9,
	}
}

// GameState is the mutable play state of a character.
type GameState struct {
	CharacterID       string
	CurrentHealth     int32
	MaximumHealth     int32
	CurrentGold       int32
	InspirationPoints int32
	SpellSlotsUsed    SpellSlots
	// ConcentratingOn is empty when the character is not concentrating.
	ConcentratingOn string
	UpdatedAt       int64
}

// GameStatePatch is a partial GameState update. Nil fields are left alone.
// A ConcentratingOn pointing at "" clears concentration.
type GameStatePatch struct {
	CurrentHealth     *int32
	MaximumHealth     *int32
	CurrentGold       *int32
	InspirationPoints *int32
	SpellSlotsUsed    [MaxSpellLevel]*int32
	ConcentratingOn   *string
}

// IsEmpty reports whether the patch names no field.
func (p *GameStatePatch) IsEmpty() bool {
	if p == nil {
		return true
	}
	if p.CurrentHealth != nil || p.MaximumHealth != nil || p.CurrentGold != nil ||
		p.InspirationPoints != nil || p.ConcentratingOn != nil {
		return false
	}
	for _, n := range p.SpellSlotsUsed {
		if n != nil {
			return false
		}
	}
	return true
}

// ApplyTo merges the present fields into state and returns the result.
func (p *GameStatePatch) ApplyTo(state GameState) GameState {
	if p == nil {
		return state
	}
	if p.CurrentHealth != nil {
		state.CurrentHealth = *p.CurrentHealth
	}
	if p.MaximumHealth != nil {
		state.MaximumHealth = *p.MaximumHealth
	}
	if p.CurrentGold != nil {
		state.CurrentGold = *p.CurrentGold
	}
	if p.InspirationPoints != nil {
		state.InspirationPoints = *p.InspirationPoints
	}
	for i, n := range p.SpellSlotsUsed {
		if n != nil {
			state.SpellSlotsUsed.Set(i+1, *n)
		}
	}
	if p.ConcentratingOn != nil {
		state.ConcentratingOn = *p.ConcentratingOn
	}
	return state
}
