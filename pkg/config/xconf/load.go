package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Load 从文件加载配置。
//
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
// 文件中未出现的键取 [Default] 的缺省值。
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	return LoadBytes(data, format)
}

// LoadBytes 从字节数据加载配置。
//
// 需要显式指定格式，适用于内嵌配置、K8s ConfigMap 等场景。
// 空数据返回缺省配置。
func LoadBytes(data []byte, format Format) (Config, error) {
	parser, err := parserFor(format)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if len(data) > 0 {
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
		if err := k.Unmarshal("", &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}

// parserFor 返回指定格式的 koanf parser。
func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
