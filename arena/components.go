package arena

import (
	"github.com/milk9111/fps/ai"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/nav"
	"github.com/milk9111/fps/player"
	"github.com/milk9111/fps/weapon"
)

// Prefab remembers which spec file an actor was built from, so reloads can
// find the actors they apply to.
type Prefab struct {
	Name string
}

var (
	EnemyComponent  = ecs.NewComponentKind[ai.Enemy]()
	PlayerComponent = ecs.NewComponentKind[player.Player]()
	WeaponComponent = ecs.NewComponentKind[weapon.Weapon]()
	NavComponent    = ecs.NewComponentKind[nav.Agent]()
	PrefabComponent = ecs.NewComponentKind[Prefab]()
)
