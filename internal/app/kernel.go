package app

import (
	"context"

	"github.com/bnema/zerowrap"

	"github.com/tsijukebox/jukebox-backup/internal/adapters/out/compose"
	"github.com/tsijukebox/jukebox-backup/internal/adapters/out/docker"
	"github.com/tsijukebox/jukebox-backup/internal/adapters/out/filesystem"
	"github.com/tsijukebox/jukebox-backup/internal/boundaries/in"
	"github.com/tsijukebox/jukebox-backup/internal/boundaries/out"
	"github.com/tsijukebox/jukebox-backup/internal/domain"
	"github.com/tsijukebox/jukebox-backup/internal/usecase/backup"
)

// ScheduleSettings describes the configured backup schedule.
type ScheduleSettings struct {
	Enabled        bool
	Preset         domain.BackupSchedule
	IncludeVolumes bool
}

// Kernel provides in-process service access for CLI execution.
//
// It does not talk to the container runtime until a volume operation needs it.
type Kernel struct {
	cfg       Config
	log       zerowrap.Logger
	ctx       context.Context
	backupSvc in.BackupService
	ping      func(ctx context.Context) error
	cleanup   func()
}

// NewKernel loads configuration, builds the logger and wires the backup service.
func NewKernel(configPath, version string) (*Kernel, error) {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return nil, err
	}

	log, logCleanup, err := initLogger(cfg)
	if err != nil {
		return nil, err
	}
	if logCleanup == nil {
		logCleanup = func() {}
	}

	ctx := zerowrap.WithCtx(context.Background(), log)

	store, err := filesystem.NewMetadataStore(cfg.Backup.Root, cfg.Backup.Product, log)
	if err != nil {
		logCleanup()
		return nil, log.WrapErr(err, "failed to create metadata store")
	}

	runtime, err := docker.NewRuntime()
	if err != nil {
		logCleanup()
		return nil, log.WrapErr(err, "failed to create Docker runtime")
	}

	svc := backup.NewService(
		store,
		filesystem.NewArchiver(),
		runtime,
		createVolumeLister(cfg),
		filesystem.NewFileLock(store.Root()),
		cfg.BackupConfig(version),
		log,
	)

	log.Debug().
		Str("backup_root", store.Root()).
		Str("config_dir", cfg.Backup.ConfigDir).
		Msg("backup kernel initialized")

	return &Kernel{
		cfg:       cfg,
		log:       log,
		ctx:       ctx,
		backupSvc: svc,
		ping:      runtime.Ping,
		cleanup: func() {
			_ = runtime.Close()
			logCleanup()
		},
	}, nil
}

// NewKernelWithService wraps an already built service. It is used by tests
// and embedders that bring their own wiring.
func NewKernelWithService(svc in.BackupService, cfg Config, log zerowrap.Logger) *Kernel {
	return &Kernel{
		cfg:       cfg,
		log:       log,
		ctx:       zerowrap.WithCtx(context.Background(), log),
		backupSvc: svc,
	}
}

// createVolumeLister prefers an explicit volume list over compose discovery.
func createVolumeLister(cfg Config) out.VolumeLister {
	if len(cfg.Volumes.Names) > 0 {
		return compose.NewStaticLister(cfg.Volumes.Names)
	}
	return compose.NewLister(cfg.Volumes.ComposeFile, cfg.Volumes.Project)
}

func (k *Kernel) Close() error {
	if k == nil || k.cleanup == nil {
		return nil
	}
	k.cleanup()
	return nil
}

// Context returns a background context carrying the kernel logger.
func (k *Kernel) Context() context.Context { return k.ctx }

func (k *Kernel) Backup() in.BackupService { return k.backupSvc }

func (k *Kernel) Log() zerowrap.Logger { return k.log }

// PingRuntime checks that the container runtime answers.
func (k *Kernel) PingRuntime(ctx context.Context) error {
	if k.ping == nil {
		return nil
	}
	return k.ping(ctx)
}

func (k *Kernel) Config() Config { return k.cfg }

func (k *Kernel) Schedule() ScheduleSettings {
	return ScheduleSettings{
		Enabled:        k.cfg.Schedule.Enabled,
		Preset:         domain.BackupSchedule(k.cfg.Schedule.Preset),
		IncludeVolumes: k.cfg.Schedule.IncludeVolumes,
	}
}
