package engine

// Tile is a single board piece. Value is a power-of-two exponent (the
// displayed number is 2^Value). Tiles are value types: any change in value
// or consumed-state produces a new Tile record. The ID stays attached to
// the same logical piece across moves and value upgrades so an animation
// layer can correlate tiles between snapshots; it is never reused while
// the tile is alive.
type Tile struct {
	ID       int
	Value    int
	Consumed bool
	// MergedTo is the position this tile's value was folded into.
	// Only meaningful while Consumed is true.
	MergedTo Position
}

// Display returns the rendered number for the tile (2^Value).
func (t Tile) Display() int {
	return 1 << t.Value
}

// consume returns the consumed variant of the tile, pointing at the match
// origin that absorbed it. Value is unchanged; the visual layer shows the
// tile fading toward MergedTo before gravity removes it.
func (t Tile) consume(origin Position) Tile {
	return Tile{ID: t.ID, Value: t.Value, Consumed: true, MergedTo: origin}
}

// withValue returns a copy of the tile with an upgraded value. The ID is
// preserved: it is the same logical piece, one merge level up.
func (t Tile) withValue(value int) Tile {
	return Tile{ID: t.ID, Value: value}
}

// Rand is the randomness capability the engine needs. *math/rand.Rand
// satisfies it; tests substitute deterministic sources.
type Rand interface {
	Intn(n int) int
}

// Spawn exponent bounds for fresh tiles: values are drawn uniformly from
// [SpawnMinValue, SpawnMaxValue], i.e. tiles 2..16.
const (
	SpawnMinValue = 1
	SpawnMaxValue = 4
)

// Spawner mints fresh tiles: random values from an injected Rand and
// unique ids from a monotonic counter. All randomness in the engine flows
// through a Spawner; nothing reads ambient global state.
type Spawner struct {
	rng    Rand
	minVal int
	maxVal int
	nextID int
}

// NewSpawner creates a spawner with the default spawn value range.
func NewSpawner(rng Rand) *Spawner {
	return NewSpawnerRange(rng, SpawnMinValue, SpawnMaxValue)
}

// NewSpawnerRange creates a spawner drawing values uniformly from
// [minVal, maxVal]. An inverted range is normalized to the default.
func NewSpawnerRange(rng Rand, minVal, maxVal int) *Spawner {
	if minVal < 1 || maxVal < minVal {
		minVal, maxVal = SpawnMinValue, SpawnMaxValue
	}
	return &Spawner{rng: rng, minVal: minVal, maxVal: maxVal, nextID: 1}
}

// Tile returns a fresh non-consumed tile with a unique id.
func (s *Spawner) Tile() Tile {
	t := Tile{
		ID:    s.nextID,
		Value: s.minVal + s.rng.Intn(s.maxVal-s.minVal+1),
	}
	s.nextID++
	return t
}
