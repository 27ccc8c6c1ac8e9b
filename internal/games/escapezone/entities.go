package escapezone

import (
	"math/rand"

	"github.com/vovakirdan/escapezone/internal/config"
	"github.com/vovakirdan/escapezone/internal/core"
)

// Entity is anything that scrolls with the road: obstacles, power-ups and trees.
type Entity struct {
	ID   int
	Pos  core.Vec // top-left corner
	Size float64
}

// Box returns the sprite bounds in world units.
func (e Entity) Box() core.RectF {
	return core.NewRectF(e.Pos.X, e.Pos.Y, e.Size, e.Size)
}

// EntityManager handles spawning, scrolling and culling of road entities.
type EntityManager struct {
	obstacles []Entity
	powerUps  []Entity
	trees     []Entity
	nextID    int
	rng       *rand.Rand
	cfg       *config.EscapeZoneConfig
}

// NewEntityManager creates an empty manager drawing randomness from rng.
func NewEntityManager(rng *rand.Rand, cfg *config.EscapeZoneConfig) *EntityManager {
	return &EntityManager{
		obstacles: make([]Entity, 0, 8),
		powerUps:  make([]Entity, 0, 4),
		trees:     make([]Entity, 0, 16),
		rng:       rng,
		cfg:       cfg,
	}
}

// Reset removes every entity.
func (em *EntityManager) Reset() {
	em.obstacles = em.obstacles[:0]
	em.powerUps = em.powerUps[:0]
	em.trees = em.trees[:0]
	em.nextID = 0
}

func (em *EntityManager) newID() int {
	id := em.nextID
	em.nextID++
	return id
}

// Obstacles returns the live obstacles.
func (em *EntityManager) Obstacles() []Entity { return em.obstacles }

// PowerUps returns the live power-ups.
func (em *EntityManager) PowerUps() []Entity { return em.powerUps }

// Trees returns the live scenery.
func (em *EntityManager) Trees() []Entity { return em.trees }

// Scroll moves everything down by dy and culls what left the screen.
func (em *EntityManager) Scroll(dy float64) {
	h := em.cfg.World.Height
	em.obstacles = scroll(em.obstacles, dy, h+em.cfg.Spawn.ObstacleSize)
	em.powerUps = scroll(em.powerUps, dy, h+em.cfg.Spawn.PowerUpSize)
	em.trees = scroll(em.trees, dy, h+em.cfg.Spawn.TreeMaxSize)
}

func scroll(list []Entity, dy, limit float64) []Entity {
	kept := list[:0]
	for _, e := range list {
		e.Pos.Y += dy
		if e.Pos.Y < limit {
			kept = append(kept, e)
		}
	}
	return kept
}

// SpawnOnSegment rolls the per-tick obstacle and power-up chances and
// places hits at random x within the segment, just above the screen.
func (em *EntityManager) SpawnOnSegment(seg Segment) {
	sp := em.cfg.Spawn
	if em.rng.Float64() < sp.ObstacleChance {
		em.obstacles = append(em.obstacles, em.placeOn(seg, sp.ObstacleSize))
	}
	if em.rng.Float64() < sp.PowerUpChance {
		em.powerUps = append(em.powerUps, em.placeOn(seg, sp.PowerUpSize))
	}
}

func (em *EntityManager) placeOn(seg Segment, size float64) Entity {
	span := seg.Width - size
	if span < 0 {
		span = 0
	}
	return Entity{
		ID:   em.newID(),
		Pos:  core.Vec{X: seg.X + em.rng.Float64()*span, Y: -size},
		Size: size,
	}
}

// MaybePlantTree rolls the scenery chance for a freshly generated segment
// and plants a tree beside it on a random side.
func (em *EntityManager) MaybePlantTree(seg Segment) {
	sp := em.cfg.Spawn
	if em.rng.Float64() >= sp.SceneryChance {
		return
	}

	var x float64
	if em.rng.Float64() < 0.5 {
		x = seg.Right() + em.rng.Float64()*sp.TreeSpread
	} else {
		x = seg.X - sp.TreeGap - em.rng.Float64()*sp.TreeSpread
	}

	em.trees = append(em.trees, Entity{
		ID:   em.newID(),
		Pos:  core.Vec{X: x, Y: seg.Y},
		Size: sp.TreeMinSize + em.rng.Float64()*sp.TreeSizeRange,
	})
}

// RemovePowerUp deletes the power-up with the given id. Reports whether it existed.
func (em *EntityManager) RemovePowerUp(id int) bool {
	for i, p := range em.powerUps {
		if p.ID == id {
			em.powerUps = append(em.powerUps[:i], em.powerUps[i+1:]...)
			return true
		}
	}
	return false
}
