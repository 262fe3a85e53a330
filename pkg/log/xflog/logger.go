package xflog

import (
	"fmt"
	"time"

	"github.com/omeyang/logkit/pkg/log/xrotate"
	"github.com/omeyang/logkit/pkg/util/xfile"
)

// timestampLayout 日志行时间戳格式，本地时间、秒级精度
const timestampLayout = "2006-01-02 15:04:05"

// 编译时接口检查
var _ Logger = (*FileLogger)(nil)

// Logger 日志接口
//
// 封闭的方法集合：八个级别入口、带校验的通用入口 Log、跳过校验的
// 底层入口 Write。没有开放式的动态转发，未知操作是编译错误。
type Logger interface {
	// Emergency 记录 emergency 级别日志
	Emergency(message string, context map[string]any) error

	// Alert 记录 alert 级别日志
	Alert(message string, context map[string]any) error

	// Critical 记录 critical 级别日志
	Critical(message string, context map[string]any) error

	// Error 记录 error 级别日志
	Error(message string, context map[string]any) error

	// Warning 记录 warning 级别日志
	Warning(message string, context map[string]any) error

	// Notice 记录 notice 级别日志
	Notice(message string, context map[string]any) error

	// Info 记录 info 级别日志
	Info(message string, context map[string]any) error

	// Debug 记录 debug 级别日志，消息自动附加调用栈
	Debug(message string, context map[string]any) error

	// Log 带级别校验的通用入口
	Log(level Level, message string, context map[string]any) error

	// Write 跳过级别校验的底层入口
	Write(p Payload, level Level) error
}

// FileLogger 文件日志引擎
//
// 持有目标文件路径和轮转阈值，两者在构造时确定、之后不可变。
// 实例存活于整个进程生命周期，没有显式的销毁/flush 步骤——每次
// 写入都是完整独立的操作，不持有任何跨调用的文件状态。
type FileLogger struct {
	path        string
	maxFileSize int64
	rot         xrotate.Rotator

	// 可注入的时钟（nil 时使用 time.Now），仅用于测试
	nowFn func() time.Time
}

// config FileLogger 构造配置
type config struct {
	rotator xrotate.Rotator
	nowFn   func() time.Time
}

// Option FileLogger 配置选项函数
type Option func(*config)

// WithRotator 注入替代的轮转器实现
//
// 默认使用时间戳轮转器（xrotate.NewTimestamp）。需要备份数量/天数
// 治理时可注入 xrotate.NewLumberjack；注入后 maxSize 参数仅作记录，
// 轮转策略完全由注入的实现决定。
func WithRotator(r xrotate.Rotator) Option {
	return func(c *config) {
		c.rotator = r
	}
}

// WithClock 注入替代时钟，仅用于测试
//
// 传入 nil 等同于不设置，时间戳回退到 time.Now。
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.nowFn = now
	}
}

// New 创建文件日志引擎
//
// 参数:
//   - path: 目标日志文件路径（相对或绝对，会做格式校验和规范化）
//   - maxSize: 轮转阈值（字节，必须为正）
//   - opts: 可选配置项
//
// 构造不触碰文件系统：目录和文件都推迟到首次写入时隐式创建。
func New(path string, maxSize int64, opts ...Option) (*FileLogger, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxSize, maxSize)
	}

	safePath, err := xfile.SanitizePath(path)
	if err != nil {
		return nil, err
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	rot := cfg.rotator
	if rot == nil {
		rot, err = xrotate.NewTimestamp(safePath, maxSize)
		if err != nil {
			return nil, err
		}
	}

	return &FileLogger{
		path:        safePath,
		maxFileSize: maxSize,
		rot:         rot,
		nowFn:       cfg.nowFn,
	}, nil
}

// Path 返回目标日志文件路径（规范化后的形式）
func (l *FileLogger) Path() string {
	return l.path
}

// MaxFileSize 返回轮转阈值（字节）
func (l *FileLogger) MaxFileSize() int64 {
	return l.maxFileSize
}

// Write 跳过级别校验的底层入口
//
// 渲染载荷并追加一行 [时间戳] [级别] 正文；类型标签只在级别标记
// 渲染为 INFO 的行输出（见包文档"行格式"）。级别不做校验：传入
// 什么就大写输出什么，
// 需要校验语义时使用 [FileLogger.Log]。
//
// 轮转检查、父目录重建和追加由轮转器在同一次调用内完成。I/O 失败
// 原样返回，不重试、不吞掉。
func (l *FileLogger) Write(p Payload, level Level) error {
	body, typeTag := p.Render()
	ts := l.now().Format(timestampLayout)

	var line string
	// 落盘格式的约束定义在渲染后的行上：级别标记渲染为 INFO 的行
	// 都带类型标签，与传入 token 的大小写无关
	if level.Tag() == LevelInfo.Tag() {
		line = fmt.Sprintf("[%s] [%s] [%s] %s%s", ts, level.Tag(), typeTag, body, eol)
	} else {
		line = fmt.Sprintf("[%s] [%s] %s%s", ts, level.Tag(), body, eol)
	}

	_, err := l.rot.Write([]byte(line))
	return err
}

// Log 带级别校验的通用入口
//
// 级别不在固定集合内时返回 [ErrInvalidLevel]，不产生任何写入。
// 校验通过后先做占位符插值，再经 Write 落盘。
func (l *FileLogger) Log(level Level, message string, context map[string]any) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, string(level))
	}
	return l.Write(StringPayload(Interpolate(message, context)), level)
}

// Emergency 记录 emergency 级别日志
func (l *FileLogger) Emergency(message string, context map[string]any) error {
	return l.Log(LevelEmergency, message, context)
}

// Alert 记录 alert 级别日志
func (l *FileLogger) Alert(message string, context map[string]any) error {
	return l.Log(LevelAlert, message, context)
}

// Critical 记录 critical 级别日志
func (l *FileLogger) Critical(message string, context map[string]any) error {
	return l.Log(LevelCritical, message, context)
}

// Error 记录 error 级别日志
func (l *FileLogger) Error(message string, context map[string]any) error {
	return l.Log(LevelError, message, context)
}

// Warning 记录 warning 级别日志
func (l *FileLogger) Warning(message string, context map[string]any) error {
	return l.Log(LevelWarning, message, context)
}

// Notice 记录 notice 级别日志
func (l *FileLogger) Notice(message string, context map[string]any) error {
	return l.Log(LevelNotice, message, context)
}

// Info 记录 info 级别日志
func (l *FileLogger) Info(message string, context map[string]any) error {
	return l.Log(LevelInfo, message, context)
}

// Rotate 手动轮转当前日志文件
//
// 不检查阈值：文件存在即轮转。日常写入路径的阈值检查不经过此方法，
// 这是给运维工具（如 logctl rotate）的显式入口。
func (l *FileLogger) Rotate() error {
	return l.rot.Rotate()
}

// Debug 记录 debug 级别日志
//
// 插值后的消息会附加当前调用栈的渲染结果（Trace: 头加逐帧一行，
// 不采集参数值），再走正常的 DEBUG 写入路径。
func (l *FileLogger) Debug(message string, context map[string]any) error {
	return l.debugWithSkip(message, context, 0)
}

// debugWithSkip 记录 debug 日志，支持额外的栈帧跳过
// extraSkip: 额外需要跳过的栈帧数（用于包级转发函数等间接调用场景）
//
//go:noinline
func (l *FileLogger) debugWithSkip(message string, context map[string]any, extraSkip int) error {
	augmented := Interpolate(message, context) + eol + "Trace:" + eol + renderTrace(extraSkip)
	return l.Write(StringPayload(augmented), LevelDebug)
}

func (l *FileLogger) now() time.Time {
	if l.nowFn != nil {
		return l.nowFn()
	}
	return time.Now()
}
