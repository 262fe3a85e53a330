package xconf

import (
	"fmt"

	"github.com/omeyang/logkit/pkg/log/xflog"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式（推荐）。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Config 日志引擎的配置。
//
// 字段与配置文件键一一对应（koanf 标签）。零值不是可用配置，
// 请从 [Default] 出发或经 [Load]/[LoadBytes] 获得。
type Config struct {
	// File 日志文件路径。
	File string `koanf:"file"`

	// MaxFileSize 轮转阈值（字节）。写入后文件超过该值即触发轮转。
	MaxFileSize int64 `koanf:"max_file_size"`

	// Level 缺省级别（小写 token，如 "info"）。供 logctl 等调用方
	// 在未显式指定级别时使用；引擎本身不做级别过滤。
	Level string `koanf:"level"`
}

// Default 返回缺省配置。
func Default() Config {
	return Config{
		File:        xflog.DefaultLogPath,
		MaxFileSize: xflog.DefaultMaxFileSize,
		Level:       string(xflog.LevelInfo),
	}
}

// Validate 校验配置内容。
//
// 级别沿用引擎的严格匹配：必须是八个小写 token 之一，
// 大小写变体或未知 token 一律拒绝。
func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("%w: file must not be empty", ErrInvalidConfig)
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("%w: max_file_size must be positive, got %d", ErrInvalidConfig, c.MaxFileSize)
	}
	if _, err := xflog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Build 根据配置构造日志引擎实例。
//
// 先 Validate 再构造；路径合法性（遍历、空字节等）由引擎的
// 构造函数进一步把关。
func (c *Config) Build(opts ...xflog.Option) (*xflog.FileLogger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return xflog.New(c.File, c.MaxFileSize, opts...)
}
