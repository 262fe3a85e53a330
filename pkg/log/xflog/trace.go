package xflog

import (
	"runtime"
	"strconv"
	"strings"
)

// maxTraceFrames 调用栈渲染的帧数上限
const maxTraceFrames = 64

// renderTrace 渲染当前调用栈，每帧一行：
//
//	<file>:<line> - <function>()
//
// 缺失字段的占位：文件未知渲染为 [internal function]，行号未知渲染
// 为 ?，函数名未知渲染为空串。只采集位置信息，不采集参数值。
//
// extraSkip 为额外跳过的栈帧数；0 时调用栈从 debugWithSkip 的调用方
// 的调用方（即业务代码）开始。
//
//go:noinline
func renderTrace(extraSkip int) string {
	pcs := make([]uintptr, maxTraceFrames)
	// skip=4: Callers(0) → renderTrace(1) → debugWithSkip(2) → Debug(3) → 业务代码(4)
	n := runtime.Callers(4+extraSkip, pcs)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if b.Len() > 0 {
			b.WriteString(eol)
		}
		writeFrame(&b, frame)
		if !more {
			break
		}
	}
	return b.String()
}

// writeFrame 渲染单个栈帧
func writeFrame(b *strings.Builder, frame runtime.Frame) {
	if frame.File != "" {
		b.WriteString(frame.File)
	} else {
		b.WriteString("[internal function]")
	}
	b.WriteByte(':')
	if frame.Line > 0 {
		b.WriteString(strconv.Itoa(frame.Line))
	} else {
		b.WriteByte('?')
	}
	b.WriteString(" - ")
	// Go 的全限定函数名（含包路径和接收者）对应 类名<分隔符>函数 的角色
	b.WriteString(frame.Function)
	b.WriteString("()")
}
