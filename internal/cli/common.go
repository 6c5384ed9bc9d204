package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/database"
	"github.com/akyairhashvil/greenbite/internal/util"
)

// globalOptions are the persistent root flags.
type globalOptions struct {
	jsonOutput bool
	dataDir    string
	configPath string
}

// appEnv is the resolved configuration shared by commands.
type appEnv struct {
	cfg     config.Settings
	dataDir string
	logs    io.Closer
}

// loadEnv resolves the data dir, reads config.yaml from it (or --config) and
// routes logging to the data dir.
func loadEnv(opts *globalOptions) (*appEnv, error) {
	override := opts.dataDir
	if override == "" {
		override = os.Getenv(config.EnvPrefix + "DATA_DIR")
	}
	dataDir := util.DataDir(config.AppName, override)

	path := opts.configPath
	if path == "" {
		path = filepath.Join(dataDir, config.ConfigFileName)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if override == "" && cfg.DataDir != "" {
		dataDir = util.DataDir(config.AppName, cfg.DataDir)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &appEnv{
		cfg:     cfg,
		dataDir: dataDir,
		logs:    util.SetupLogging(dataDir, config.LogFileName),
	}, nil
}

func (e *appEnv) dbPath() string {
	return filepath.Join(e.dataDir, config.DBFileName)
}

func (e *appEnv) openStore(ctx context.Context) (*database.Database, error) {
	db, err := database.Open(ctx, e.dbPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func (e *appEnv) Close() error {
	if e == nil || e.logs == nil {
		return nil
	}
	return e.logs.Close()
}

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
