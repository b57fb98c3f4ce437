// Package telemetry provides Pyroscope continuous profiling integration.
package telemetry

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"
)

// ProfilerConfig configures Pyroscope continuous profiling.
type ProfilerConfig struct {
	Enabled           bool
	ServerAddress     string // e.g. "http://pyroscope:4040"
	ApplicationName   string
	BasicAuthUser     string // for Grafana Cloud
	BasicAuthPassword string

	// Profiles selects profile types by name. An empty list selects
	// DefaultProfiles. Unknown names are rejected at construction.
	Profiles []string

	MutexProfileFraction int // default 5 when a mutex profile is selected
	BlockProfileRate     int // default 5 when a block profile is selected
	DisableGCRuns        bool
}

// DefaultProfiles is the profile set used when none are configured:
// CPU, allocation, in-use memory, and goroutines. Mutex and block
// profiles are opt-in because they change runtime sampling settings.
var DefaultProfiles = []string{
	"cpu",
	"alloc_objects",
	"alloc_space",
	"inuse_objects",
	"inuse_space",
	"goroutines",
}

var profileTypesByName = map[string]pyroscope.ProfileType{
	"cpu":            pyroscope.ProfileCPU,
	"alloc_objects":  pyroscope.ProfileAllocObjects,
	"alloc_space":    pyroscope.ProfileAllocSpace,
	"inuse_objects":  pyroscope.ProfileInuseObjects,
	"inuse_space":    pyroscope.ProfileInuseSpace,
	"goroutines":     pyroscope.ProfileGoroutines,
	"mutex_count":    pyroscope.ProfileMutexCount,
	"mutex_duration": pyroscope.ProfileMutexDuration,
	"block_count":    pyroscope.ProfileBlockCount,
	"block_duration": pyroscope.ProfileBlockDuration,
}

// Profiler wraps the Pyroscope profiler with lifecycle management.
type Profiler struct {
	profiler *pyroscope.Profiler
	logger   *zap.Logger
	config   ProfilerConfig
	mu       sync.Mutex
	stopped  bool
}

// NewProfiler creates and starts a Pyroscope profiler. When profiling
// is disabled it returns a no-op profiler so callers can still defer
// Stop unconditionally.
func NewProfiler(cfg ProfilerConfig, logger *zap.Logger) (*Profiler, error) {
	names := cfg.Profiles
	if len(names) == 0 {
		names = DefaultProfiles
	}
	types := make([]pyroscope.ProfileType, 0, len(names))
	wantMutex, wantBlock := false, false
	for _, name := range names {
		pt, ok := profileTypesByName[name]
		if !ok {
			return nil, fmt.Errorf("unknown profile type %q", name)
		}
		types = append(types, pt)
		switch pt {
		case pyroscope.ProfileMutexCount, pyroscope.ProfileMutexDuration:
			wantMutex = true
		case pyroscope.ProfileBlockCount, pyroscope.ProfileBlockDuration:
			wantBlock = true
		}
	}

	p := &Profiler{
		logger: logger,
		config: cfg,
	}

	if !cfg.Enabled {
		logger.Info("Continuous profiling disabled, using no-op profiler")
		return p, nil
	}

	if cfg.ServerAddress == "" {
		return nil, fmt.Errorf("profiler server address is required when profiling is enabled")
	}
	if cfg.ApplicationName == "" {
		return nil, fmt.Errorf("profiler application name is required when profiling is enabled")
	}

	// Mutex and block profiles need runtime sampling turned on first
	if wantMutex {
		fraction := cfg.MutexProfileFraction
		if fraction <= 0 {
			fraction = 5
		}
		runtime.SetMutexProfileFraction(fraction)
		logger.Debug("Mutex profiling enabled", zap.Int("fraction", fraction))
	}
	if wantBlock {
		rate := cfg.BlockProfileRate
		if rate <= 0 {
			rate = 5
		}
		runtime.SetBlockProfileRate(rate)
		logger.Debug("Block profiling enabled", zap.Int("rate", rate))
	}

	tags := map[string]string{}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		tags["hostname"] = hostname
	}
	if podName := os.Getenv("POD_NAME"); podName != "" {
		tags["pod"] = podName
	}

	pyroscopeCfg := pyroscope.Config{
		ApplicationName:   cfg.ApplicationName,
		ServerAddress:     cfg.ServerAddress,
		Logger:            newPyroscopeLogger(logger),
		Tags:              tags,
		ProfileTypes:      types,
		DisableGCRuns:     cfg.DisableGCRuns,
		BasicAuthUser:     cfg.BasicAuthUser,
		BasicAuthPassword: cfg.BasicAuthPassword,
	}

	profiler, err := pyroscope.Start(pyroscopeCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to start Pyroscope profiler: %w", err)
	}
	p.profiler = profiler

	logger.Info("Pyroscope profiler started",
		zap.String("server_address", cfg.ServerAddress),
		zap.String("application_name", cfg.ApplicationName),
		zap.Strings("profiles", names),
	)
	return p, nil
}

// Stop flushes pending profiles and stops the profiler. Safe to call
// multiple times. The Pyroscope SDK's Stop does not take a context, so
// an unresponsive server is bounded only by the SDK's internal
// timeouts.
func (p *Profiler) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return nil
	}
	p.stopped = true

	if p.profiler == nil {
		return nil
	}

	p.logger.Info("Stopping Pyroscope profiler...")
	if err := p.profiler.Stop(); err != nil {
		p.logger.Error("Error stopping profiler", zap.Error(err))
		return fmt.Errorf("failed to stop profiler: %w", err)
	}
	p.logger.Info("Pyroscope profiler stopped")
	return nil
}

// IsEnabled reports whether a profiler is actually running.
func (p *Profiler) IsEnabled() bool {
	return p.config.Enabled && p.profiler != nil
}

// GetConfig returns a copy of the profiler configuration.
func (p *Profiler) GetConfig() ProfilerConfig {
	return p.config
}

// pyroscopeLogger adapts zap to the pyroscope.Logger interface.
type pyroscopeLogger struct {
	logger *zap.SugaredLogger
}

func newPyroscopeLogger(logger *zap.Logger) pyroscope.Logger {
	return &pyroscopeLogger{logger: logger.Named("pyroscope").Sugar()}
}

func (l *pyroscopeLogger) Infof(format string, args ...any) {
	l.logger.Infof(format, args...)
}

func (l *pyroscopeLogger) Debugf(format string, args ...any) {
	l.logger.Debugf(format, args...)
}

func (l *pyroscopeLogger) Errorf(format string, args ...any) {
	l.logger.Errorf(format, args...)
}
