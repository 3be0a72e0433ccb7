package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"

	"github.com/riskibarqy/esports-club/internal/app"
	"github.com/riskibarqy/esports-club/internal/config"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewJSON(cfg.LogLevel).With("process", "migration")
	defer func() { _ = logger.Sync() }()

	m, source, err := app.NewMigrator(app.MigrationDBURL(cfg), os.Getenv("MIGRATIONS_DIR"))
	if err != nil {
		fatal(logger, "create migrator", err)
	}
	defer closeMigrator(m, logger)

	if err := run(m, os.Args[1:], logger); err != nil {
		fatal(logger, "migration failed", err, "source", source)
	}
}

func run(m *migrate.Migrate, args []string, logger *logging.Logger) error {
	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "up":
		if err := ignoreNoChange(m.Up(), logger); err != nil {
			return err
		}
		logger.Info("migrations applied")
	case "down":
		steps, err := parseSteps(args[1:])
		if err != nil {
			return err
		}
		if err := ignoreNoChange(m.Steps(-steps), logger); err != nil {
			return err
		}
		logger.Info("migrations rolled back", "steps", steps)
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("version: none")
			fmt.Println("dirty: false")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		fmt.Printf("version: %d\n", version)
		fmt.Printf("dirty: %t\n", dirty)
	case "force":
		if len(args) < 2 {
			return fmt.Errorf("force requires a version argument")
		}
		version, err := parseVersion(args[1])
		if err != nil {
			return err
		}
		if err := m.Force(version); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
		logger.Info("forced version", "version", version)
	case "goto", "migrate":
		if len(args) < 2 {
			return fmt.Errorf("goto requires a target version argument")
		}
		target, err := parseTarget(args[1])
		if err != nil {
			return err
		}
		if err := ignoreNoChange(m.Migrate(target), logger); err != nil {
			return err
		}
		logger.Info("migrated", "version", target)
	default:
		printUsage()
		os.Exit(2)
	}
	return nil
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}

	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("version must be >= 0")
	}
	if value > int64(^uint(0)>>1) {
		return 0, fmt.Errorf("version is too large for this platform")
	}

	return int(value), nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func ignoreNoChange(err error, logger *logging.Logger) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func closeMigrator(m *migrate.Migrate, logger *logging.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}

func fatal(logger *logging.Logger, msg string, err error, args ...any) {
	logger.Error(msg, append([]any{"error", err}, args...)...)
	_ = logger.Sync()
	os.Exit(1)
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <up|down|version|force|goto> [args]\n", name)
	fmt.Fprintln(os.Stderr, "examples:")
	fmt.Fprintf(os.Stderr, "  %s up\n", name)
	fmt.Fprintf(os.Stderr, "  %s down 1\n", name)
	fmt.Fprintf(os.Stderr, "  %s version\n", name)
	fmt.Fprintf(os.Stderr, "  %s force 1\n", name)
	fmt.Fprintf(os.Stderr, "  %s goto 1\n", name)
}
