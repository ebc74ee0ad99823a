package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kasuganosora/pkmnsim/game/battle"
	"github.com/spf13/viper"
)

type Config struct {
	Engine   EngineConfig   `mapstructure:"engine"`
	Database DatabaseConfig `mapstructure:"database"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Session  SessionConfig  `mapstructure:"session"`
	Runner   RunnerConfig   `mapstructure:"runner"`
	Log      LogConfig      `mapstructure:"log"`
}

type EngineConfig struct {
	Mode                string `mapstructure:"mode"` // compat | strict
	Generation          int    `mapstructure:"generation"`
	TurnLimit           int    `mapstructure:"turn_limit"`
	SleepClause         bool   `mapstructure:"sleep_clause"`
	FreezeClause        bool   `mapstructure:"freeze_clause"`
	EndlessBattleClause bool   `mapstructure:"endless_battle_clause"`
	Log                 bool   `mapstructure:"log"` // write battle events at debug level
}

type DatabaseConfig struct {
	Mode         string        `mapstructure:"mode"` // sqlite | mysql
	SQLitePath   string        `mapstructure:"sqlite_path"`
	MySQLDSN     string        `mapstructure:"mysql_dsn"`
	MySQLMaxOpen int           `mapstructure:"mysql_max_open"`
	MySQLMaxIdle int           `mapstructure:"mysql_max_idle"`
	MySQLMaxLife time.Duration `mapstructure:"mysql_max_life"`
}

type CacheConfig struct {
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
	LocalGCInterval time.Duration `mapstructure:"local_gc_interval"`
	LocalPubSubBuf  int           `mapstructure:"local_pubsub_buf"`
}

type SessionConfig struct {
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	MaxSteps      int           `mapstructure:"max_steps"`
	EventTail     int           `mapstructure:"event_tail"`
}

type RunnerConfig struct {
	Battles  int    `mapstructure:"battles"`
	TeamFile string `mapstructure:"team_file"`
	Seed     uint64 `mapstructure:"seed"`
	Verify   bool   `mapstructure:"verify"`
}

type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

var envKeys = strings.NewReplacer(".", "_")

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.mode", "compat")
	v.SetDefault("engine.generation", 1)
	v.SetDefault("engine.turn_limit", battle.DefaultTurnLimit)
	v.SetDefault("engine.endless_battle_clause", true)
	v.SetDefault("database.mode", "sqlite")
	v.SetDefault("database.sqlite_path", "./data/replays.db")
	v.SetDefault("database.mysql_max_open", 50)
	v.SetDefault("database.mysql_max_idle", 10)
	v.SetDefault("database.mysql_max_life", "1h")
	v.SetDefault("cache.local_gc_interval", "30s")
	v.SetDefault("cache.local_pubsub_buf", 256)
	v.SetDefault("session.idle_ttl", "30m")
	v.SetDefault("session.sweep_interval", "1m")
	v.SetDefault("session.max_steps", 2*battle.DefaultTurnLimit)
	v.SetDefault("session.event_tail", 64)
	v.SetDefault("runner.battles", 100)
	v.SetDefault("runner.team_file", "./teams.yaml")
	v.SetDefault("runner.verify", true)
}

// Load reads config from the given YAML file path. Any key may be
// overridden from the environment as PKMNSIM_<SECTION>_<KEY>.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("pkmnsim")
	v.SetEnvKeyReplacer(envKeys)
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	return cfg
}

// Options converts the engine section into battle options.
func (e EngineConfig) Options() (battle.Options, error) {
	mode, err := battle.ParseMode(e.Mode)
	if err != nil {
		return battle.Options{}, fmt.Errorf("engine.mode: %w", err)
	}
	if e.Generation != 0 && e.Generation != 1 {
		return battle.Options{}, fmt.Errorf("engine.generation %d: %w", e.Generation, battle.ErrUnsupportedMode)
	}
	return battle.Options{
		Mode:                mode,
		Generation:          e.Generation,
		TurnLimit:           e.TurnLimit,
		SleepClause:         e.SleepClause,
		FreezeClause:        e.FreezeClause,
		EndlessBattleClause: e.EndlessBattleClause,
	}, nil
}
