package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type EnemySpec struct {
	Name             string   `yaml:"name"`
	Health           int      `yaml:"health"`
	Speed            float64  `yaml:"speed"`
	AttackDamage     int      `yaml:"attack_damage"`
	DetectionRange   float64  `yaml:"detection_range"`
	AttackRange      float64  `yaml:"attack_range"`
	AttackCooldown   float64  `yaml:"attack_cooldown"`
	LoseTargetFactor float64  `yaml:"lose_target_factor"`
	Damping          float64  `yaml:"damping"`
	Gravity          float64  `yaml:"gravity"`
	RemovalDelay     float64  `yaml:"removal_delay"`
	RetargetOnDamage *bool    `yaml:"retarget_on_damage"`
	Radius           float64  `yaml:"radius"`
	FSM              *FSMSpec `yaml:"fsm"`
}

// WithDefaults fills unset tunables with the stock enemy values.
func (s EnemySpec) WithDefaults() EnemySpec {
	if s.Health <= 0 {
		s.Health = 100
	}
	if s.Speed <= 0 {
		s.Speed = 3.0
	}
	if s.AttackDamage < 0 {
		s.AttackDamage = 0
	}
	if s.DetectionRange <= 0 {
		s.DetectionRange = 15.0
	}
	if s.AttackRange <= 0 {
		s.AttackRange = 2.0
	}
	if s.AttackCooldown <= 0 {
		s.AttackCooldown = 1.0
	}
	if s.LoseTargetFactor <= 0 {
		s.LoseTargetFactor = 1.2
	}
	if s.Damping <= 0 {
		s.Damping = 0.8
	}
	if s.Gravity <= 0 {
		s.Gravity = 9.8
	}
	if s.RemovalDelay <= 0 {
		s.RemovalDelay = 2.0
	}
	if s.RetargetOnDamage == nil {
		retarget := true
		s.RetargetOnDamage = &retarget
	}
	if s.Radius <= 0 {
		s.Radius = 0.5
	}
	return s
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	spec = spec.WithDefaults()
	return &spec, nil
}

type WeaponSpec struct {
	Name       string  `yaml:"name"`
	Damage     int     `yaml:"damage"`
	FireRate   float64 `yaml:"fire_rate"`
	MaxAmmo    int     `yaml:"max_ammo"`
	Range      float64 `yaml:"range"`
	LayerMask  uint32  `yaml:"layer_mask"`
	AutoReload bool    `yaml:"auto_reload"`
}

func (s WeaponSpec) WithDefaults() WeaponSpec {
	if s.FireRate <= 0 {
		s.FireRate = 0.1
	}
	if s.MaxAmmo <= 0 {
		s.MaxAmmo = 30
	}
	if s.Range <= 0 {
		s.Range = 1000
	}
	if s.LayerMask == 0 {
		s.LayerMask = 0b1110
	}
	return s
}

func LoadWeaponSpec() (*WeaponSpec, error) {
	spec, err := LoadSpec[WeaponSpec]("weapon.yaml")
	if err != nil {
		return nil, err
	}
	spec = spec.WithDefaults()
	return &spec, nil
}

type PlayerSpec struct {
	Name             string  `yaml:"name"`
	Health           int     `yaml:"health"`
	Speed            float64 `yaml:"speed"`
	JumpVelocity     float64 `yaml:"jump_velocity"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	Friction         float64 `yaml:"friction"`
	PitchLimit       float64 `yaml:"pitch_limit"`
	EyeHeight        float64 `yaml:"eye_height"`
	Gravity          float64 `yaml:"gravity"`
	Radius           float64 `yaml:"radius"`
}

func (s PlayerSpec) WithDefaults() PlayerSpec {
	if s.Health <= 0 {
		s.Health = 100
	}
	if s.Speed <= 0 {
		s.Speed = 5.0
	}
	if s.JumpVelocity <= 0 {
		s.JumpVelocity = 4.5
	}
	if s.MouseSensitivity <= 0 {
		s.MouseSensitivity = 0.003
	}
	if s.Friction <= 0 {
		s.Friction = 0.85
	}
	if s.PitchLimit <= 0 {
		s.PitchLimit = 1.5
	}
	if s.EyeHeight <= 0 {
		s.EyeHeight = 1.6
	}
	if s.Gravity <= 0 {
		s.Gravity = 9.8
	}
	if s.Radius <= 0 {
		s.Radius = 0.4
	}
	return s
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	spec = spec.WithDefaults()
	return &spec, nil
}

// ArenaSpec lays out a level on a square-cell grid. Rows use '#' for walls
// and '.' for floor; the grid's origin cell is centered on world (0, 0).
type ArenaSpec struct {
	Name     string      `yaml:"name"`
	CellSize float64     `yaml:"cell_size"`
	Rows     []string    `yaml:"rows"`
	Player   SpawnSpec   `yaml:"player"`
	Enemies  []SpawnSpec `yaml:"enemies"`
}

type SpawnSpec struct {
	Prefab string  `yaml:"prefab"`
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
}

func LoadArenaSpec(filename string) (*ArenaSpec, error) {
	if filename == "" {
		filename = "arena.yaml"
	}
	spec, err := LoadSpec[ArenaSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.CellSize <= 0 {
		spec.CellSize = 1
	}
	return &spec, nil
}

// FSMSpec describes an AI state graph. Transitions are checked in list
// order; each entry maps one checker name to the state it leads to.
type FSMSpec struct {
	Initial     string                         `yaml:"initial"`
	States      map[string]FSMStateSpec        `yaml:"states"`
	Transitions map[string][]map[string]string `yaml:"transitions"`
}

type FSMStateSpec struct {
	OnEnter []map[string]any `yaml:"on_enter"`
	While   []map[string]any `yaml:"while"`
	Stay    []map[string]any `yaml:"stay"`
	OnExit  []map[string]any `yaml:"on_exit"`
}
