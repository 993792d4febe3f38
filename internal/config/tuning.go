package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Tuning собирает численные параметры симуляции, которые можно переопределить YAML-файлом.
type Tuning struct {
	Seed         int64        `yaml:"seed"` // 0 - сид от текущего времени
	Spawn        SpawnTuning  `yaml:"spawn"`
	Enemy        EnemyTuning  `yaml:"enemy"`
	Weapon       WeaponTuning `yaml:"weapon"`
	Pickup       PickupTuning `yaml:"pickup"`
	Player       PlayerTuning `yaml:"player"`
	Store        StoreConfig  `yaml:"store"`
	UpgradesPath string       `yaml:"upgrades_path"` // JSON с деревом навыков; пусто - встроенное
}

type SpawnTuning struct {
	InitialInterval float64 `yaml:"initial_interval"` // D0, секунд между спавнами
	ScaleInterval   float64 `yaml:"scale_interval"`   // S, период таймера сложности
	GrowthFactor    float64 `yaml:"growth_factor"`    // Множитель DifficultyScale за период
	RampFactor      float64 `yaml:"ramp_factor"`      // Интервал спавна делится на него за период

	// Ограничения рампы. Ноль означает "без ограничения".
	MaxDifficultyScale float64 `yaml:"max_difficulty_scale"`
	MinSpawnInterval   float64 `yaml:"min_spawn_interval"`
}

type EnemyTuning struct {
	BaseHealth         float64 `yaml:"base_health"`
	BaseDamage         float64 `yaml:"base_damage"`
	AttackInterval     float64 `yaml:"attack_interval"`
	MeleeRange         float64 `yaml:"melee_range"`
	DriveForce         float64 `yaml:"drive_force"`
	Mass               float64 `yaml:"mass"`
	Damping            float64 `yaml:"damping"`
	HomingBiasStrength float64 `yaml:"homing_bias_strength"`
	FreezeDuration     float64 `yaml:"freeze_duration"`
}

type WeaponTuning struct {
	Damage       float64 `yaml:"damage"`
	Pierce       int     `yaml:"pierce"`
	Knockback    float64 `yaml:"knockback"`
	FireInterval float64 `yaml:"fire_interval"`
	SpreadAngle  float64 `yaml:"spread_angle"`
	Volley       int     `yaml:"volley"`
}

type PickupTuning struct {
	LaunchSpeed float64 `yaml:"launch_speed"`
	Value       uint32  `yaml:"value"`
}

type PlayerTuning struct {
	MaxHealth float64 `yaml:"max_health"`
}

// StoreConfig описывает хранилище рекорда.
type StoreConfig struct {
	Backend       string `yaml:"backend"` // memory | badger | redis
	Path          string `yaml:"path"`    // Каталог badger
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	KeyPrefix     string `yaml:"key_prefix"`
}

// DefaultTuning возвращает параметры по умолчанию.
func DefaultTuning() Tuning {
	return Tuning{
		Spawn: SpawnTuning{
			InitialInterval: 1.0,
			ScaleInterval:   1.0,
			GrowthFactor:    1.005,
			RampFactor:      1.01,
		},
		Enemy: EnemyTuning{
			BaseHealth:         100,
			BaseDamage:         10,
			AttackInterval:     0.5,
			MeleeRange:         100,
			DriveForce:         1000,
			Mass:               10,
			Damping:            1.0,
			HomingBiasStrength: 150000,
			FreezeDuration:     2.0,
		},
		Weapon: WeaponTuning{
			Damage:       50,
			Pierce:       1,
			Knockback:    500,
			FireInterval: 0.4,
			SpreadAngle:  0,
			Volley:       1,
		},
		Pickup: PickupTuning{
			LaunchSpeed: 600,
			Value:       1,
		},
		Player: PlayerTuning{
			MaxHealth: 100,
		},
		Store: StoreConfig{
			Backend:   "badger",
			Path:      "data",
			RedisAddr: "localhost:6379",
			KeyPrefix: "shmup:",
		},
	}
}

// LoadTuning читает YAML поверх значений по умолчанию.
// Если path == "", пытается взять путь из ENV SHMUP_CONFIG; без него - только дефолты.
// После файла применяются переменные окружения SHMUP_SEED, SHMUP_STORE, SHMUP_REDIS_ADDR.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()

	if path == "" {
		path = os.Getenv("SHMUP_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
		}
		if err := yaml.Unmarshal(data, &t); err != nil {
			return Tuning{}, fmt.Errorf("failed to unmarshal tuning: %w", err)
		}
	}

	if err := t.applyEnv(); err != nil {
		return Tuning{}, err
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

func (t *Tuning) applyEnv() error {
	if v := os.Getenv("SHMUP_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid SHMUP_SEED %q: %w", v, err)
		}
		t.Seed = seed
	}
	if v := os.Getenv("SHMUP_STORE"); v != "" {
		t.Store.Backend = v
	}
	if v := os.Getenv("SHMUP_REDIS_ADDR"); v != "" {
		t.Store.RedisAddr = v
	}
	return nil
}

// Validate проверяет, что параметры сохраняют монотонность сложности и положительные интервалы.
func (t Tuning) Validate() error {
	var errs []error
	if t.Spawn.InitialInterval <= 0 {
		errs = append(errs, errors.New("spawn.initial_interval must be > 0"))
	}
	if t.Spawn.ScaleInterval <= 0 {
		errs = append(errs, errors.New("spawn.scale_interval must be > 0"))
	}
	if t.Spawn.GrowthFactor < 1 {
		errs = append(errs, errors.New("spawn.growth_factor must be >= 1"))
	}
	if t.Spawn.RampFactor < 1 {
		errs = append(errs, errors.New("spawn.ramp_factor must be >= 1"))
	}
	if t.Spawn.MaxDifficultyScale != 0 && t.Spawn.MaxDifficultyScale < 1 {
		errs = append(errs, errors.New("spawn.max_difficulty_scale must be 0 or >= 1"))
	}
	if t.Spawn.MinSpawnInterval < 0 {
		errs = append(errs, errors.New("spawn.min_spawn_interval must be >= 0"))
	}
	if t.Enemy.BaseHealth <= 0 || t.Enemy.BaseDamage < 0 {
		errs = append(errs, errors.New("enemy.base_health must be > 0 and enemy.base_damage >= 0"))
	}
	if t.Enemy.AttackInterval <= 0 || t.Enemy.FreezeDuration <= 0 {
		errs = append(errs, errors.New("enemy.attack_interval and enemy.freeze_duration must be > 0"))
	}
	if t.Weapon.Damage <= 0 || t.Weapon.Pierce < 1 || t.Weapon.Volley < 1 || t.Weapon.FireInterval <= 0 {
		errs = append(errs, errors.New("weapon: damage > 0, pierce >= 1, volley >= 1, fire_interval > 0 required"))
	}
	if t.Pickup.Value == 0 {
		errs = append(errs, errors.New("pickup.value must be > 0"))
	}
	if t.Player.MaxHealth <= 0 {
		errs = append(errs, errors.New("player.max_health must be > 0"))
	}
	switch t.Store.Backend {
	case "memory", "badger", "redis":
	default:
		errs = append(errs, fmt.Errorf("unknown store.backend %q", t.Store.Backend))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}
