package weapon

import "github.com/MaoJiayang/battleship-remaster/internal/board"

// Kind is the closed set of weapons. A new weapon is never added at
// runtime, so this is a tagged union plus a static dispatch table
// (spec.md §9 "Sum-type weapons") rather than a dynamic plugin registry.
type Kind int

const (
	AP Kind = iota
	HE
	Sonar
)

func (k Kind) String() string {
	switch k {
	case AP:
		return "AP"
	case HE:
		return "HE"
	case Sonar:
		return "SONAR"
	default:
		return "INVALID"
	}
}

// Weapon is implemented by each of the three concrete weapons below.
type Weapon interface {
	Kind() Kind
	Label() string

	// IsAvailable reports whether the attacker's surviving fleet can use
	// this weapon at all (spec.md §4.1.x "Availability").
	IsAvailable(attackerRoster *board.Roster) bool

	// Damage is the per-cell damage this weapon currently deals, which for
	// AP depends on the attacker's surviving fleet (spec.md §4.1.1).
	Damage(attackerRoster *board.Roster) int

	// MaxDamage is the weapon's damage ceiling used to normalize the
	// evaluator's expected-damage term (spec.md §4.4): AP's current
	// damage, or a fixed constant for HE.
	MaxDamage(attackerRoster *board.Roster) int

	// Coverage returns the cells this weapon would affect/preview if fired
	// at (r, c), clipped to an n-sided board.
	Coverage(n, r, c int) []board.Coordinates

	// IsValidTarget reports whether firing at (r, c) is legal right now.
	IsValidTarget(ctx *Context, r, c int) bool

	// Resolve applies the weapon to (r, c) against ctx's defender state
	// and returns the ordered event stream plus any ship ids that sank.
	Resolve(ctx *Context, r, c int) ([]Event, []int)
}

// Registry is the closed, effectively-immutable-after-construction
// weapon-id -> implementation table. It may be shared read-only by
// multiple concurrent match simulators (spec.md §5 "Shared-resource
// policy").
type Registry struct {
	weapons map[Kind]Weapon
}

// NewRegistry builds the default registry: AP always, HE requiring a
// surviving CV, Sonar requiring a surviving sensor ship (default {DD} per
// spec.md's adopted open-question resolution).
func NewRegistry() *Registry {
	return &Registry{
		weapons: map[Kind]Weapon{
			AP:    apWeapon{},
			HE:    heWeapon{},
			Sonar: NewSonarWeapon(board.DD),
		},
	}
}

func (reg *Registry) Get(k Kind) Weapon {
	return reg.weapons[k]
}

func (reg *Registry) All() []Weapon {
	ws := make([]Weapon, 0, len(reg.weapons))
	for _, k := range []Kind{AP, HE, Sonar} {
		ws = append(ws, reg.weapons[k])
	}
	return ws
}
