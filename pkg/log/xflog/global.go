package xflog

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// =============================================================================
// 进程默认 Logger
//
// 定位：脚手架/小脚本等简单场景。
// 正式代码推荐依赖注入（显式持有 *FileLogger）。
// 生命周期是显式的：Init 一次、Default 读取、ResetDefault 复位（测试）。
// =============================================================================

// 进程默认 logger 的缺省构造参数
const (
	// DefaultLogPath 未显式 Init 时的日志文件路径
	DefaultLogPath = "logs/app.log"

	// DefaultMaxFileSize 未显式 Init 时的轮转阈值（10 MB）
	DefaultMaxFileSize int64 = 10 << 20
)

// globalLogger 进程默认 logger 实例（并发安全）
var globalLogger atomic.Pointer[FileLogger]

// globalMu 保护 globalOnce 及其 Do 执行（也用于 Init/ResetDefault）
var globalMu sync.Mutex

// globalOnce 确保缺省参数的默认 logger 只初始化一次
var globalOnce sync.Once

// Init 用显式参数初始化进程默认 logger
//
// 只允许调用一次：重复调用返回 [ErrAlreadyInitialized]（无论首次是
// 经由 Init 还是 Default 的缺省初始化）。测试中可先 [ResetDefault]。
func Init(path string, maxSize int64, opts ...Option) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalLogger.Load() != nil {
		return ErrAlreadyInitialized
	}

	l, err := New(path, maxSize, opts...)
	if err != nil {
		return err
	}
	globalLogger.Store(l)
	return nil
}

// defaultLogger 用缺省参数创建默认 logger（惰性初始化）
//
// 设计决策: 在持锁状态下执行 once.Do，确保 ResetDefault（重置
// globalOnce）与 once.Do 之间不会发生并发竞争。初始化后 Default()
// 走 atomic.Load 快速路径，不进入此函数。
func defaultLogger() *FileLogger {
	globalMu.Lock()
	defer globalMu.Unlock()

	globalOnce.Do(func() {
		// Init 可能在拿锁之前已经完成
		if globalLogger.Load() != nil {
			return
		}
		l, err := New(DefaultLogPath, DefaultMaxFileSize)
		if err != nil {
			// 设计决策: 缺省参数不应失败；万一失败则降级为 stderr
			// 输出的最小可用 logger，库代码不 panic 终止宿主进程。
			fmt.Fprintf(os.Stderr, "xflog: failed to build default logger: %v, using stderr fallback\n", err)
			l = &FileLogger{
				path:        DefaultLogPath,
				maxFileSize: DefaultMaxFileSize,
				rot:         stderrRotator{},
			}
		}
		globalLogger.Store(l)
	})
	return globalLogger.Load()
}

// Default 返回进程默认 logger
//
// 未经 Init 显式初始化时，首次调用会用 [DefaultLogPath] 和
// [DefaultMaxFileSize] 惰性创建。
func Default() *FileLogger {
	if l := globalLogger.Load(); l != nil {
		return l
	}
	return defaultLogger()
}

// SetDefault 替换进程默认 logger
//
// 用于测试或配置热更新场景（如 xconf.Watch 回调里换入新配置构造的
// 实例）。传入 nil 会被忽略；要回到未初始化状态请使用 [ResetDefault]。
func SetDefault(l *FileLogger) {
	if l == nil {
		return
	}
	globalLogger.Store(l)
}

// ResetDefault 重置进程默认 logger 为未初始化状态（仅用于测试）
//
// 调用后可以重新 Init，或由下次 Default() 重新惰性创建。
func ResetDefault() {
	globalMu.Lock()
	globalLogger.Store(nil)
	globalOnce = sync.Once{}
	globalMu.Unlock()
}

// stderrRotator 默认 logger 构造失败时的降级输出
type stderrRotator struct{}

func (stderrRotator) Write(p []byte) (int, error) { return os.Stderr.Write(p) }
func (stderrRotator) Close() error                { return nil }
func (stderrRotator) Rotate() error               { return nil }

// =============================================================================
// 包级转发函数：固定集合，逐一显式声明
// =============================================================================

// Emergency 使用进程默认 logger 记录 emergency 级别日志
func Emergency(message string, context map[string]any) error {
	return Default().Emergency(message, context)
}

// Alert 使用进程默认 logger 记录 alert 级别日志
func Alert(message string, context map[string]any) error {
	return Default().Alert(message, context)
}

// Critical 使用进程默认 logger 记录 critical 级别日志
func Critical(message string, context map[string]any) error {
	return Default().Critical(message, context)
}

// Error 使用进程默认 logger 记录 error 级别日志
func Error(message string, context map[string]any) error {
	return Default().Error(message, context)
}

// Warning 使用进程默认 logger 记录 warning 级别日志
func Warning(message string, context map[string]any) error {
	return Default().Warning(message, context)
}

// Notice 使用进程默认 logger 记录 notice 级别日志
func Notice(message string, context map[string]any) error {
	return Default().Notice(message, context)
}

// Info 使用进程默认 logger 记录 info 级别日志
func Info(message string, context map[string]any) error {
	return Default().Info(message, context)
}

// Debug 使用进程默认 logger 记录 debug 级别日志
//
// 直接进入 debugWithSkip，调用栈深度与实例方法路径一致，
// 渲染出的 Trace 不包含本转发函数自身的帧。
func Debug(message string, context map[string]any) error {
	return Default().debugWithSkip(message, context, 0)
}

// Log 使用进程默认 logger 的通用入口
func Log(level Level, message string, context map[string]any) error {
	return Default().Log(level, message, context)
}

// Write 使用进程默认 logger 的底层入口
func Write(p Payload, level Level) error {
	return Default().Write(p, level)
}
