package pokemon

// Gen1MaxID is the highest national dex number in the catalog
const Gen1MaxID = 151

// TypeName identifies one of the 18 elemental types
type TypeName string

// Type constants
const (
	TypeNormal   TypeName = "normal"
	TypeFire     TypeName = "fire"
	TypeWater    TypeName = "water"
	TypeElectric TypeName = "electric"
	TypeGrass    TypeName = "grass"
	TypeIce      TypeName = "ice"
	TypeFighting TypeName = "fighting"
	TypePoison   TypeName = "poison"
	TypeGround   TypeName = "ground"
	TypeFlying   TypeName = "flying"
	TypePsychic  TypeName = "psychic"
	TypeBug      TypeName = "bug"
	TypeRock     TypeName = "rock"
	TypeGhost    TypeName = "ghost"
	TypeDragon   TypeName = "dragon"
	TypeDark     TypeName = "dark"
	TypeSteel    TypeName = "steel"
	TypeFairy    TypeName = "fairy"
)

// AllTypes lists every type in canonical order. Ordering matters: it is the
// tie-break order for weakness partitions.
var AllTypes = [...]TypeName{
	TypeNormal,
	TypeFire,
	TypeWater,
	TypeElectric,
	TypeGrass,
	TypeIce,
	TypeFighting,
	TypePoison,
	TypeGround,
	TypeFlying,
	TypePsychic,
	TypeBug,
	TypeRock,
	TypeGhost,
	TypeDragon,
	TypeDark,
	TypeSteel,
	TypeFairy,
}

var knownTypes = func() map[TypeName]struct{} {
	m := make(map[TypeName]struct{}, len(AllTypes))
	for _, t := range AllTypes {
		m[t] = struct{}{}
	}
	return m
}()

// IsTypeName reports whether s is one of the 18 known types
func IsTypeName(s string) bool {
	_, ok := knownTypes[TypeName(s)]
	return ok
}

// String returns the type identifier
func (t TypeName) String() string {
	return string(t)
}

// IsValid reports whether t is one of the 18 known types
func (t TypeName) IsValid() bool {
	return IsTypeName(string(t))
}

// Stat names as served by PokeAPI
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special-attack"
	StatSpecialDefense = "special-defense"
	StatSpeed          = "speed"
)
