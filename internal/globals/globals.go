package globals

import (
	"log/slog"
	"os"
	"sync"

	"github.com/aqualog/aqualog/internal/config"
	"github.com/aqualog/aqualog/internal/database"
	"github.com/aqualog/aqualog/internal/ranges"
	"github.com/aqualog/aqualog/internal/repositories"
)

var (
	// Global instances
	Settings *config.Settings
	Logger   *slog.Logger

	Tanks        *repositories.TankRepository
	CustomRanges *repositories.CustomRangeRepository
	WaterTests   *repositories.WaterTestRepository
	Ranges       *ranges.Resolver

	initOnce sync.Once
	initErr  error
)

// Initialize sets up the logger, settings, database, and repositories
// exactly once. The default safe-range table is loaded here and stays
// immutable for the life of the process.
func Initialize(verbose bool) error {
	initOnce.Do(func() {
		setupLogger(verbose)

		created, settings := config.LoadOrInitializeSettingsFromDefaultLocation()
		Settings = settings
		if created {
			Logger.Debug("Created new settings file")
			if err := Settings.Save(); err != nil {
				Logger.Error("Failed to save new settings", "error", err)
			}
		} else {
			Logger.Debug("Loaded existing settings")
		}

		if initErr = database.Init(); initErr != nil {
			Logger.Error("Failed to initialize database", "error", initErr)
			return
		}
		Logger.Debug("Database initialized", "path", config.DBPath())

		Tanks = repositories.NewTankRepository(database.DB)
		CustomRanges = repositories.NewCustomRangeRepository(database.DB)
		WaterTests = repositories.NewWaterTestRepository(database.DB)
		Ranges = ranges.NewResolver(CustomRanges, config.DefaultSafeRanges())
	})
	return initErr
}

// setupLogger configures the global logger
func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(Logger)
}
