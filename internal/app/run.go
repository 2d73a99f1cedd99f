package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

// Config holds the application configuration.
type Config struct {
	Server struct {
		DataDir string `mapstructure:"data_dir"`
	} `mapstructure:"server"`

	Backup struct {
		Root                string        `mapstructure:"root"`
		Product             string        `mapstructure:"product"`
		ConfigDir           string        `mapstructure:"config_dir"`
		Keep                int           `mapstructure:"keep"`
		Workers             int           `mapstructure:"workers"`
		HelperImage         string        `mapstructure:"helper_image"`
		HelperTimeout       time.Duration `mapstructure:"helper_timeout"`
		HelperTimeoutPerGiB time.Duration `mapstructure:"helper_timeout_per_gib"`
	} `mapstructure:"backup"`

	Volumes struct {
		ComposeFile string   `mapstructure:"compose_file"`
		Project     string   `mapstructure:"project"`
		Names       []string `mapstructure:"names"`
	} `mapstructure:"volumes"`

	Schedule struct {
		Enabled        bool   `mapstructure:"enabled"`
		Preset         string `mapstructure:"preset"`
		IncludeVolumes bool   `mapstructure:"include_volumes"`
	} `mapstructure:"schedule"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`
}

// BackupConfig maps the loaded configuration onto the backup service settings.
func (c Config) BackupConfig(version string) domain.BackupConfig {
	return domain.BackupConfig{
		Product:             c.Backup.Product,
		ConfigDir:           c.Backup.ConfigDir,
		Version:             version,
		Keep:                c.Backup.Keep,
		Workers:             c.Backup.Workers,
		HelperImage:         c.Backup.HelperImage,
		HelperTimeout:       c.Backup.HelperTimeout,
		HelperTimeoutPerGiB: c.Backup.HelperTimeoutPerGiB,
	}
}

// initConfig loads configuration from file and environment.
func initConfig(configPath string) (*viper.Viper, Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return nil, Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalizeConfig(&cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, Config{}, err
	}

	return v, cfg, nil
}

func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("server.data_dir", DefaultDataDir())
	v.SetDefault("backup.root", "") // defaults to {data_dir}/backups when empty
	v.SetDefault("backup.product", "tsijukebox")
	v.SetDefault("backup.config_dir", "/opt/tsijukebox/docker")
	v.SetDefault("backup.keep", 7)
	v.SetDefault("backup.workers", 2)
	v.SetDefault("backup.helper_image", "alpine:3.20")
	v.SetDefault("backup.helper_timeout", "30m")
	v.SetDefault("backup.helper_timeout_per_gib", "5m")
	v.SetDefault("volumes.compose_file", "") // defaults to {config_dir}/docker-compose.yml when empty
	v.SetDefault("volumes.project", "")
	v.SetDefault("volumes.names", []string{})
	v.SetDefault("schedule.enabled", false)
	v.SetDefault("schedule.preset", string(domain.ScheduleDaily))
	v.SetDefault("schedule.include_volumes", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("TSIJUKEBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// normalizeConfig fills the values derived from other keys.
func normalizeConfig(cfg *Config) {
	if cfg.Server.DataDir == "" {
		cfg.Server.DataDir = DefaultDataDir()
	}
	if cfg.Backup.Root == "" {
		cfg.Backup.Root = filepath.Join(cfg.Server.DataDir, "backups")
	}
	if cfg.Volumes.ComposeFile == "" {
		cfg.Volumes.ComposeFile = filepath.Join(cfg.Backup.ConfigDir, "docker-compose.yml")
	}
	if cfg.Logging.File.Path == "" {
		cfg.Logging.File.Path = filepath.Join(cfg.Server.DataDir, "logs", "jukebox-backup.log")
	}

	// Environment overrides arrive as one comma separated string.
	names := make([]string, 0, len(cfg.Volumes.Names))
	for _, entry := range cfg.Volumes.Names {
		for _, name := range strings.Split(entry, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	cfg.Volumes.Names = names
}

func validateConfig(cfg Config) error {
	var errs []error
	if strings.TrimSpace(cfg.Backup.Product) == "" {
		errs = append(errs, fmt.Errorf("backup.product must not be empty"))
	}
	if strings.TrimSpace(cfg.Backup.ConfigDir) == "" {
		errs = append(errs, fmt.Errorf("backup.config_dir must not be empty"))
	}
	if cfg.Backup.Keep < 0 {
		errs = append(errs, fmt.Errorf("backup.keep must be >= 0, got %d", cfg.Backup.Keep))
	}
	if cfg.Backup.Workers < 1 {
		errs = append(errs, fmt.Errorf("backup.workers must be >= 1, got %d", cfg.Backup.Workers))
	}
	if cfg.Backup.HelperTimeout <= 0 {
		errs = append(errs, fmt.Errorf("backup.helper_timeout must be positive"))
	}
	if cfg.Backup.HelperTimeoutPerGiB <= 0 {
		errs = append(errs, fmt.Errorf("backup.helper_timeout_per_gib must be positive"))
	}
	if !domain.BackupSchedule(cfg.Schedule.Preset).IsValid() {
		errs = append(errs, fmt.Errorf("schedule.preset must be one of hourly, daily, weekly, monthly, got %q", cfg.Schedule.Preset))
	}
	if _, err := zerolog.ParseLevel(cfg.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if cfg.Logging.Format != "console" && cfg.Logging.Format != "json" {
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", cfg.Logging.Format))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrInvalidArgument, errors.Join(errs...))
}

// initLogger initializes the zerowrap logger.
func initLogger(cfg Config) (zerowrap.Logger, func(), error) {
	logConfig := zerowrap.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}

	if cfg.Logging.File.Enabled {
		log, cleanup, err := zerowrap.NewWithFile(logConfig, zerowrap.FileConfig{
			Enabled:    true,
			Path:       cfg.Logging.File.Path,
			MaxSize:    cfg.Logging.File.MaxSize,
			MaxBackups: cfg.Logging.File.MaxBackups,
			MaxAge:     cfg.Logging.File.MaxAge,
			Compress:   true,
		})
		if err != nil {
			return zerowrap.Default(), nil, fmt.Errorf("failed to create logger with file: %w", err)
		}
		return log, cleanup, nil
	}

	return zerowrap.New(logConfig), nil, nil
}
