package xflog

import (
	"fmt"
	"log"
	"runtime"
	"strings"
)

// ErrorHandler 运行时错误桥接
//
// 把宿主运行时上报的一条错误（严重度代码、消息、来源文件与行号）
// 转写为 ERROR 级日志。行文案保持 PHP 侧消费方既有的格式：
//
//	PHP Error [Level <code>]: <message> in <file> on line <line>
//
// 返回值恒为 false，向注册方表明"继续执行默认/原生的错误处理"——
// 本引擎只记录，从不吞掉宿主自身的错误报告。写入失败被忽略：
// 错误桥接是尽力而为的旁路，不能反向中断宿主的错误处理流程。
func (l *FileLogger) ErrorHandler(code int, message, file string, line int) bool {
	_ = l.Error(fmt.Sprintf("PHP Error [Level %d]: %s in %s on line %d",
		code, message, file, line), nil)
	return false
}

// ExceptionHandler 未捕获异常桥接
//
// 把一个异常值（通常是 recover 的返回值或未处理的 error）转写为
// ERROR 级日志：
//
//	Uncaught Exception: <message> in <file> on line <line>
//
// 在 defer-recover 中调用时，来源位置取 panic 发生点（越过
// runtime.gopanic 的下一帧）；直接调用时取调用点。无返回值——
// 未捕获异常在定义上是终结性的，记录之后没有继续传播的语义，
// 是否 re-panic 由调用方决定（见包文档示例）。
func (l *FileLogger) ExceptionHandler(v any) {
	file, line := exceptionOrigin()
	_ = l.Error(fmt.Sprintf("Uncaught Exception: %s in %s on line %d",
		exceptionMessage(v), file, line), nil)
}

// exceptionMessage 提取异常值的消息文本
func exceptionMessage(v any) string {
	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// exceptionOrigin 定位异常的来源文件和行号
//
// 优先返回 panic 发生点：在 panic 展开期间，调用栈中 runtime.gopanic
// 的下一帧就是触发 panic 的业务代码。栈中没有 gopanic 时（直接调用
// ExceptionHandler 上报一个 error），退化为 ExceptionHandler 的调用点。
func exceptionOrigin() (string, int) {
	pcs := make([]uintptr, maxTraceFrames)
	// skip=3: Callers(0) → exceptionOrigin(1) → ExceptionHandler(2) → 调用点(3)
	n := runtime.Callers(3, pcs)

	frames := runtime.CallersFrames(pcs[:n])
	callSiteFile, callSiteLine := "unknown", 0
	sawGopanic := false
	first := true
	for {
		frame, more := frames.Next()
		if sawGopanic {
			return frame.File, frame.Line
		}
		if first {
			callSiteFile, callSiteLine = frame.File, frame.Line
			first = false
		}
		if frame.Function == "runtime.gopanic" {
			sawGopanic = true
		}
		if !more {
			break
		}
	}
	return callSiteFile, callSiteLine
}

// RegisterHandlers 把引擎挂接为标准库 log 包的进程级输出目标
//
// 挂接后，经由标准库 log 默认 logger 输出的每一行都以 ERROR 级别
// 写入本引擎（时间戳由本引擎补充，标准库自身的时间前缀被关闭）。
// 返回的 restore 函数解除挂接并还原先前的输出目标、前缀和 flags，
// 测试可借此做作用域化的安装与拆除。
//
// 注册是显式的：构造 FileLogger 不会隐式改动任何进程级状态。
func (l *FileLogger) RegisterHandlers() (restore func()) {
	prevWriter := log.Writer()
	prevFlags := log.Flags()
	prevPrefix := log.Prefix()

	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(stdlogBridge{logger: l})

	return func() {
		log.SetOutput(prevWriter)
		log.SetFlags(prevFlags)
		log.SetPrefix(prevPrefix)
	}
}

// stdlogBridge 标准库 log 输出到引擎的桥接 writer
type stdlogBridge struct {
	logger *FileLogger
}

// Write 实现 io.Writer：每行以 ERROR 级别落盘
func (b stdlogBridge) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if err := b.logger.Error(msg, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}
