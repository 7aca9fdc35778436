package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// 环境变量名
const (
	EnvConfigPath = "COLLECTOR_CONFIG"
	EnvSeed       = "COLLECTOR_SEED"
	EnvVerbose    = "COLLECTOR_VERBOSE"
)

// EnvSettings 从环境变量读取的启动参数，作为命令行参数的默认值
type EnvSettings struct {
	ConfigPath string
	Seed       int64
	Verbose    bool
}

// LoadEnv 加载 .env 文件（不存在时忽略）并读取环境变量
//
// 参数:
//   - files: .env 文件路径，为空时使用当前目录的 .env
//
// 返回:
//   - EnvSettings: 未设置的变量保持零值
//   - error: .env 格式错误或变量值无法解析时返回错误
func LoadEnv(files ...string) (EnvSettings, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return EnvSettings{}, fmt.Errorf("failed to load env file: %w", err)
	}

	settings := EnvSettings{
		ConfigPath: os.Getenv(EnvConfigPath),
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return EnvSettings{}, fmt.Errorf("%s=%q: %w", EnvSeed, v, err)
		}
		settings.Seed = seed
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return EnvSettings{}, fmt.Errorf("%s=%q: %w", EnvVerbose, v, err)
		}
		settings.Verbose = verbose
	}

	if settings.ConfigPath != "" {
		log.Printf("[Config] %s=%s", EnvConfigPath, settings.ConfigPath)
	}
	return settings, nil
}
