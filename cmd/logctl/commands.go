package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/logkit/pkg/config/xconf"
	"github.com/omeyang/logkit/pkg/log/xflog"
)

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createLogCommand(),
		createWriteCommand(),
		createRotateCommand(),
		createCheckCommand(),
	}
}

// createLogCommand 创建 log 子命令（级别严格校验的常规写入）。
func createLogCommand() *cli.Command {
	return &cli.Command{
		Name:      "log",
		Aliases:   []string{"l"},
		Usage:     "以指定级别写入一条日志",
		ArgsUsage: "<level> <message>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "context",
				Aliases: []string{"C"},
				Usage:   "插值上下文 k=v，可重复",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return &usageError{msg: "log 需要两个参数: <level> <message>"}
			}

			level, err := xflog.ParseLevel(args[0])
			if err != nil {
				return &usageError{msg: err.Error()}
			}

			kv, err := parseContext(cmd.StringSlice("context"))
			if err != nil {
				return err
			}

			logger, err := buildLogger(cmd)
			if err != nil {
				return err
			}
			return logger.Log(level, args[1], kv)
		},
	}
}

// createWriteCommand 创建 write 子命令（级别不经校验的底层写入）。
func createWriteCommand() *cli.Command {
	return &cli.Command{
		Name:      "write",
		Aliases:   []string{"w"},
		Usage:     "底层写入，级别原样落盘",
		ArgsUsage: "<message>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "级别 token（不校验）",
				Value:   string(xflog.LevelInfo),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return &usageError{msg: "write 需要一个参数: <message>"}
			}

			logger, err := buildLogger(cmd)
			if err != nil {
				return err
			}
			return logger.Write(xflog.StringPayload(args[0]), xflog.Level(cmd.String("level")))
		},
	}
}

// createRotateCommand 创建 rotate 子命令。
func createRotateCommand() *cli.Command {
	return &cli.Command{
		Name:  "rotate",
		Usage: "手动轮转当前日志文件",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger, err := buildLogger(cmd)
			if err != nil {
				return err
			}
			if err := logger.Rotate(); err != nil {
				return fmt.Errorf("轮转失败: %w", err)
			}
			fmt.Println("已轮转")
			return nil
		},
	}
}

// createCheckCommand 创建 check 子命令（校验配置文件）。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "校验配置文件并打印解析结果",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String("config")
			if path == "" {
				return &usageError{msg: "check 需要 --config 指定配置文件"}
			}

			cfg, err := xconf.Load(path)
			if err != nil {
				if errors.Is(err, xconf.ErrEmptyPath) || errors.Is(err, xconf.ErrUnsupportedFormat) {
					return &usageError{msg: err.Error()}
				}
				return err
			}

			fmt.Printf("file: %s\nmax_file_size: %d\nlevel: %s\n",
				cfg.File, cfg.MaxFileSize, cfg.Level)
			return nil
		},
	}
}

// buildLogger 根据全局选项构造引擎实例。
//
// 优先级：显式 flag > 配置文件 > 缺省值。--config 未指定时
// 直接使用 flag 值（flag 自带缺省值）。
func buildLogger(cmd *cli.Command) (*xflog.FileLogger, error) {
	file := cmd.String("file")
	maxSize := cmd.Int64("max-size")

	if path := cmd.String("config"); path != "" {
		cfg, err := xconf.Load(path)
		if err != nil {
			return nil, err
		}
		if !cmd.IsSet("file") {
			file = cfg.File
		}
		if !cmd.IsSet("max-size") {
			maxSize = cfg.MaxFileSize
		}
	}

	logger, err := xflog.New(file, maxSize)
	if err != nil {
		// 路径和阈值都来自调用方输入
		return nil, &usageError{msg: err.Error()}
	}
	return logger, nil
}

// parseContext 把重复的 k=v flag 解析为插值上下文。
func parseContext(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	kv := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, &usageError{msg: fmt.Sprintf("非法的 context 参数 %q，应为 k=v", pair)}
		}
		kv[key] = value
	}
	return kv, nil
}
