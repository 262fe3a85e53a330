// logctl 是文件日志引擎的命令行工具。
//
// 用法:
//
//	logctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-f, --file      日志文件路径 (默认: logs/app.log)
//	-m, --max-size  轮转阈值，字节 (默认: 10485760)
//	-c, --config    配置文件路径 (.yaml/.yml/.json)；显式 flag 优先于配置文件
//
// 命令:
//
//	log <level> <message>    以指定级别写入一条日志（级别严格校验）
//	  --context, -C k=v      插值上下文，可重复
//	write <message>          底层写入，级别不经校验
//	  --level, -l            级别 token (默认: info)
//	rotate                   手动轮转当前日志文件
//	check                    校验配置文件并打印解析结果
//	help                     显示帮助信息
//
// 退出码:
//
//	0: 命令执行成功
//	1: 命令执行失败（写入失败、轮转失败、配置加载失败等）
//	2: 参数错误（未知级别、非法 k=v、缺少必需参数、未知命令等）
//
// 示例:
//
//	logctl log info "service started"                       # 写入 INFO 日志
//	logctl log error "connect failed: {reason}" -C reason=timeout
//	logctl -f /var/log/app.log -m 5242880 log warning "disk almost full"
//	logctl -c logger.yaml log notice "using config file"
//	logctl write "raw line" --level custom                  # 级别原样落盘
//	logctl rotate                                           # 手动轮转
//	logctl -c logger.yaml check                             # 校验配置
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/logkit/pkg/log/xflog"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "logctl",
		Usage:   "文件日志引擎命令行工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "日志文件路径",
				Value:   xflog.DefaultLogPath,
			},
			&cli.Int64Flag{
				Name:    "max-size",
				Aliases: []string{"m"},
				Usage:   "轮转阈值（字节）",
				Value:   xflog.DefaultMaxFileSize,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (.yaml/.yml/.json)",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"LogKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// usageError 表示调用方的参数错误（退出码 2）。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 判断错误是否由 CLI 框架的参数解析产生。
func isCLIUsageError(err error) bool {
	if _, ok := err.(cli.ExitCoder); ok {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "invalid value") ||
		strings.HasPrefix(msg, "No help topic for")
}
