// Package config loads simulation and front-end settings from YAML over built-in defaults
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/layout"
	"github.com/lixenwraith/invaders/parameter"
	"github.com/lixenwraith/invaders/vmath"
)

// Config is the full runtime configuration
type Config struct {
	TickRate   int              `yaml:"tick_rate"`
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Combat     CombatConfig     `yaml:"combat"`
	Input      InputConfig      `yaml:"input"`
	Log        LogConfig        `yaml:"log"`
	Feed       FeedConfig       `yaml:"feed"`
	Audio      AudioConfig      `yaml:"audio"`
}

type ArenaConfig struct {
	Left           float64 `yaml:"left"`
	Right          float64 `yaml:"right"`
	Bottom         float64 `yaml:"bottom"`
	Top            float64 `yaml:"top"`
	WallThickness  float64 `yaml:"wall_thickness"`
	PlayerEnemyGap float64 `yaml:"player_enemy_gap"`
	CeilingGap     float64 `yaml:"ceiling_gap"`
	SideGap        float64 `yaml:"side_gap"`
}

type PlayerConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	FloorGap float64 `yaml:"floor_gap"`
	Speed    float64 `yaml:"speed"`
	Padding  float64 `yaml:"padding"`
	Lives    int     `yaml:"lives"`
}

type EnemyConfig struct {
	Width           float64       `yaml:"width"`
	Height          float64       `yaml:"height"`
	Rows            int           `yaml:"rows"`    // 0 derives from usable height
	Columns         int           `yaml:"columns"` // 0 derives from usable width
	GapX            float64       `yaml:"gap_x"`
	GapY            float64       `yaml:"gap_y"`
	Speed           float64       `yaml:"speed"`
	Padding         float64       `yaml:"padding"`
	FireInterval    time.Duration `yaml:"fire_interval"`
	ColumnTolerance float64       `yaml:"column_tolerance"` // 0 means exact x equality
}

type ProjectileConfig struct {
	PlayerWidth  float64 `yaml:"player_width"`
	PlayerHeight float64 `yaml:"player_height"`
	PlayerSpeed  float64 `yaml:"player_speed"`
	EnemyWidth   float64 `yaml:"enemy_width"`
	EnemyHeight  float64 `yaml:"enemy_height"`
	EnemySpeed   float64 `yaml:"enemy_speed"`
	CullMargin   float64 `yaml:"cull_margin"`
}

type CombatConfig struct {
	FriendlyFire bool `yaml:"friendly_fire"`
}

type InputConfig struct {
	Bindings    map[string][]string `yaml:"bindings"`
	HoldInitial time.Duration       `yaml:"hold_initial"`
	HoldRepeat  time.Duration       `yaml:"hold_repeat"`
}

type LogConfig struct {
	Debug   bool   `yaml:"debug"`
	Level   string `yaml:"level"`
	Dir     string `yaml:"dir"`
	File    string `yaml:"file"`
	MaxSize int64  `yaml:"max_size"`
}

type FeedConfig struct {
	Enabled          bool          `yaml:"enabled"`
	Addr             string        `yaml:"addr"`
	Path             string        `yaml:"path"`
	SendBuffer       int           `yaml:"send_buffer"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	SnapshotInterval time.Duration `yaml:"snapshot_interval"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		TickRate: parameter.TickRate,
		Arena: ArenaConfig{
			Left:           parameter.ArenaLeft,
			Right:          parameter.ArenaRight,
			Bottom:         parameter.ArenaBottom,
			Top:            parameter.ArenaTop,
			WallThickness:  parameter.WallThickness,
			PlayerEnemyGap: parameter.PlayerEnemyGap,
			CeilingGap:     parameter.CeilingGap,
			SideGap:        parameter.SideGap,
		},
		Player: PlayerConfig{
			Width:    parameter.PlayerWidth,
			Height:   parameter.PlayerHeight,
			FloorGap: parameter.PlayerFloorGap,
			Speed:    parameter.PlayerSpeed,
			Padding:  parameter.PlayerPadding,
			Lives:    parameter.PlayerLives,
		},
		Enemy: EnemyConfig{
			Width:           parameter.EnemyWidth,
			Height:          parameter.EnemyHeight,
			Rows:            parameter.EnemyRows,
			Columns:         parameter.EnemyColumns,
			GapX:            parameter.EnemyGapX,
			GapY:            parameter.EnemyGapY,
			Speed:           parameter.EnemySpeed,
			Padding:         parameter.EnemyPadding,
			FireInterval:    parameter.EnemyFireInterval,
			ColumnTolerance: parameter.EnemyColumnTolerance,
		},
		Projectile: ProjectileConfig{
			PlayerWidth:  parameter.PlayerProjectileWidth,
			PlayerHeight: parameter.PlayerProjectileHeight,
			PlayerSpeed:  parameter.PlayerProjectileSpeed,
			EnemyWidth:   parameter.EnemyProjectileWidth,
			EnemyHeight:  parameter.EnemyProjectileHeight,
			EnemySpeed:   parameter.EnemyProjectileSpeed,
			CullMargin:   parameter.ProjectileCullMargin,
		},
		Combat: CombatConfig{
			FriendlyFire: parameter.FriendlyFire,
		},
		Input: InputConfig{
			Bindings:    input.DefaultBindings(),
			HoldInitial: parameter.KeyHoldInitialTimeout,
			HoldRepeat:  parameter.KeyHoldRepeatTimeout,
		},
		Log: LogConfig{
			Level:   "debug",
			Dir:     parameter.LogDir,
			File:    parameter.LogFileName,
			MaxSize: parameter.LogMaxSize,
		},
		Feed: FeedConfig{
			Addr:             parameter.FeedAddr,
			Path:             parameter.FeedPath,
			SendBuffer:       parameter.FeedSendBuffer,
			WriteTimeout:     parameter.FeedWriteTimeout,
			SnapshotInterval: parameter.FeedSnapshotInterval,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: parameter.AudioSampleRate,
			Volume:     parameter.AudioVolume,
		},
	}
}

// Load reads a YAML file over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
// Unknown keys are rejected so typos do not silently fall back to defaults
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", name, v))
		}
	}

	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Arena.Right <= c.Arena.Left {
		errs = append(errs, fmt.Errorf("arena.right (%g) must exceed arena.left (%g)", c.Arena.Right, c.Arena.Left))
	}
	if c.Arena.Top <= c.Arena.Bottom {
		errs = append(errs, fmt.Errorf("arena.top (%g) must exceed arena.bottom (%g)", c.Arena.Top, c.Arena.Bottom))
	}
	positive("arena.wall_thickness", c.Arena.WallThickness)
	nonNegative("arena.player_enemy_gap", c.Arena.PlayerEnemyGap)
	nonNegative("arena.ceiling_gap", c.Arena.CeilingGap)
	nonNegative("arena.side_gap", c.Arena.SideGap)

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	nonNegative("player.padding", c.Player.Padding)
	if c.Player.Lives < 1 {
		errs = append(errs, fmt.Errorf("player.lives must be at least 1, got %d", c.Player.Lives))
	}

	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	if c.Enemy.Rows < 0 || c.Enemy.Columns < 0 {
		errs = append(errs, fmt.Errorf("enemy.rows and enemy.columns must not be negative"))
	}
	nonNegative("enemy.gap_x", c.Enemy.GapX)
	nonNegative("enemy.gap_y", c.Enemy.GapY)
	positive("enemy.speed", c.Enemy.Speed)
	nonNegative("enemy.padding", c.Enemy.Padding)
	if c.Enemy.FireInterval <= 0 {
		errs = append(errs, fmt.Errorf("enemy.fire_interval must be positive, got %v", c.Enemy.FireInterval))
	}
	nonNegative("enemy.column_tolerance", c.Enemy.ColumnTolerance)

	positive("projectile.player_width", c.Projectile.PlayerWidth)
	positive("projectile.player_height", c.Projectile.PlayerHeight)
	positive("projectile.player_speed", c.Projectile.PlayerSpeed)
	positive("projectile.enemy_width", c.Projectile.EnemyWidth)
	positive("projectile.enemy_height", c.Projectile.EnemyHeight)
	positive("projectile.enemy_speed", c.Projectile.EnemySpeed)
	nonNegative("projectile.cull_margin", c.Projectile.CullMargin)

	if _, err := input.NewKeyMap(c.Input.Bindings); err != nil {
		errs = append(errs, fmt.Errorf("input.bindings: %w", err))
	}
	if c.Input.HoldInitial <= 0 || c.Input.HoldRepeat <= 0 {
		errs = append(errs, fmt.Errorf("input.hold_initial and input.hold_repeat must be positive"))
	}

	if c.Feed.Enabled {
		if c.Feed.Addr == "" {
			errs = append(errs, fmt.Errorf("feed.addr is required when the feed is enabled"))
		}
		if c.Feed.SendBuffer <= 0 {
			errs = append(errs, fmt.Errorf("feed.send_buffer must be positive, got %d", c.Feed.SendBuffer))
		}
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}

	return errors.Join(errs...)
}

// TickInterval is the wall-clock period between scheduled ticks
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// DeltaTime is the fixed simulated step per tick; equal to TickInterval by construction
func (c *Config) DeltaTime() time.Duration {
	return c.TickInterval()
}

// Layout converts the arena, player and enemy sections into placement input
func (c *Config) Layout() layout.Config {
	return layout.Config{
		Arena: layout.Arena{
			Left:   c.Arena.Left,
			Right:  c.Arena.Right,
			Bottom: c.Arena.Bottom,
			Top:    c.Arena.Top,
		},
		WallThickness:  c.Arena.WallThickness,
		PlayerSize:     vmath.V2(c.Player.Width, c.Player.Height),
		PlayerFloorGap: c.Player.FloorGap,
		PlayerPadding:  c.Player.Padding,
		EnemySize:      vmath.V2(c.Enemy.Width, c.Enemy.Height),
		EnemyRows:      c.Enemy.Rows,
		EnemyColumns:   c.Enemy.Columns,
		EnemyGap:       vmath.V2(c.Enemy.GapX, c.Enemy.GapY),
		EnemyPadding:   c.Enemy.Padding,
		PlayerEnemyGap: c.Arena.PlayerEnemyGap,
		CeilingGap:     c.Arena.CeilingGap,
		SideGap:        c.Arena.SideGap,
	}
}

// KeyMap builds the configured key bindings
func (c *Config) KeyMap() (*input.KeyMap, error) {
	return input.NewKeyMap(c.Input.Bindings)
}
