package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"asl/internal/catalog"
	"asl/pkg/fileutil"
)

// 默认状态目录名（相对用户家目录）
const DefaultDirName = ".asl"

// 环境变量名
const RootDirEnvVar = "ASL_ROOT"

// 配置文件名
const ConfigFile = "config.json"

// Store 管理状态目录与配置文件。
type Store struct {
	RootDir string
}

// NewStore 创建配置存储。
// rootDir 为空时，按优先级使用：
// 1. ASL_ROOT 环境变量
// 2. 默认值 ~/.asl
func NewStore(rootDir string) (*Store, error) {
	if rootDir == "" {
		rootDir = os.Getenv(RootDirEnvVar)
	}
	if rootDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		rootDir = filepath.Join(home, DefaultDirName)
	}

	return &Store{RootDir: rootDir}, nil
}

// ConfigPath 返回配置文件路径。
func (s *Store) ConfigPath() string {
	return filepath.Join(s.RootDir, ConfigFile)
}

// Initialize 确保状态目录结构存在，并在首次运行时写入默认配置。幂等。
// containers 与 images 子目录为保留目录，当前没有操作使用它们。
func (s *Store) Initialize() error {
	dirs := []string{
		s.RootDir,
		filepath.Join(s.RootDir, "containers"),
		filepath.Join(s.RootDir, "images"),
	}
	for _, dir := range dirs {
		if err := fileutil.EnsureDir(dir, 0755); err != nil {
			return err
		}
	}

	if _, err := os.Stat(s.ConfigPath()); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return s.Save(DefaultConfig())
}

// DefaultConfig 返回首次运行时写入的初始配置。
func DefaultConfig() *Config {
	return &Config{
		DefaultDistro: catalog.DefaultID,
		Distros:       make(map[string]DistroInfo),
	}
}

// Load 读取并反序列化配置文件。
// 文件缺失或损坏时返回错误；调用方应先调用 Initialize。
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if cfg.Distros == nil {
		cfg.Distros = make(map[string]DistroInfo)
	}

	return &cfg, nil
}

// Save 序列化配置并整体覆盖写回。
func (s *Store) Save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	// 原子写入：先写临时文件，再重命名
	if err := fileutil.AtomicWriteFile(s.ConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	return nil
}
