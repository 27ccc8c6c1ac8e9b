package config

// Variant is one of the shipped rule combinations. Each variant is a
// separately registered game with its own score table.
type Variant struct {
	ID        string
	Title     string
	Turbo     TurboMode
	Collision CollisionMode
	Edge      EdgeMode
}

// Variants returns the shipped variants. The first one is the classic game.
func Variants() []Variant {
	return []Variant{
		{ID: "escapezone", Title: "Escape Zone", Turbo: TurboBoost, Collision: CollisionRadius, Edge: EdgeClamp},
		{ID: "escapezone_meter", Title: "Escape Zone: Turbo Meter", Turbo: TurboMeter, Collision: CollisionRadius, Edge: EdgeClamp},
		{ID: "escapezone_boxed", Title: "Escape Zone: Box Hits", Turbo: TurboBoost, Collision: CollisionRect, Edge: EdgeClamp},
		{ID: "escapezone_edge", Title: "Escape Zone: Sharp Edges", Turbo: TurboBoost, Collision: CollisionRadius, Edge: EdgeKill},
	}
}

// LookupVariant finds a shipped variant by id.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants() {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// ApplyVariant overrides the policy modes in cfg with the variant's.
// Empty fields leave the YAML value in place.
func ApplyVariant(cfg *EscapeZoneConfig, v Variant) {
	if v.Turbo != "" {
		cfg.Turbo.Mode = v.Turbo
	}
	if v.Collision != "" {
		cfg.Collision.Mode = v.Collision
	}
	if v.Edge != "" {
		cfg.Edge.Mode = v.Edge
	}
}
