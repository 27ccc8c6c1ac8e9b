package escapezone

import (
	"github.com/vovakirdan/escapezone/internal/config"
	"github.com/vovakirdan/escapezone/internal/core"
)

// Collider decides whether the car touches an entity.
type Collider interface {
	Obstacle(car Car, e Entity) bool
	PowerUp(car Car, e Entity) bool
}

// NewCollider returns the contact test selected by cfg.
func NewCollider(cfg config.CollisionConfig) Collider {
	if cfg.Mode == config.CollisionRect {
		return rectCollider{}
	}
	return radiusCollider{
		car:      cfg.CarRadius,
		obstacle: cfg.ObstacleRadius,
		powerUp:  cfg.PowerUpRadius,
	}
}

// radiusCollider treats sprites as circles with radius = fraction × size.
type radiusCollider struct {
	car, obstacle, powerUp float64
}

func (c radiusCollider) Obstacle(car Car, e Entity) bool {
	return c.circle(car.Box(), c.car*car.Size).Overlaps(c.circle(e.Box(), c.obstacle*e.Size))
}

func (c radiusCollider) PowerUp(car Car, e Entity) bool {
	return c.circle(car.Box(), c.car*car.Size).Overlaps(c.circle(e.Box(), c.powerUp*e.Size))
}

func (radiusCollider) circle(box core.RectF, r float64) core.Circle {
	return core.Circle{C: box.Center(), R: r}
}

// rectCollider uses axis-aligned overlap of the sprite boxes.
type rectCollider struct{}

func (rectCollider) Obstacle(car Car, e Entity) bool {
	return car.Box().Intersects(e.Box())
}

func (rectCollider) PowerUp(car Car, e Entity) bool {
	return car.Box().Intersects(e.Box())
}
