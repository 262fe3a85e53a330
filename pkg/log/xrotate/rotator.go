package xrotate

import "io"

// 编译时断言：Rotator 接口是 io.WriteCloser 的超集
var _ io.WriteCloser = (Rotator)(nil)

// Rotator 日志轮转器接口
//
// 隐式实现 [io.WriteCloser]，可直接用于任何接受 io.Writer 的场景
// （如 xflog 引擎的输出目标）。额外提供 Rotate 方法用于手动触发轮转。
//
// 扩展新实现时，必须满足以下约定：
//   - Write 必须是进程内并发安全的
//   - Close 后调用 Write 或 Rotate 应返回 [ErrClosed]
//   - Rotate 可以在任意时刻调用
type Rotator interface {
	// Write 追加一段日志数据，满足轮转条件时先执行轮转
	Write(p []byte) (n int, err error)

	// Close 关闭轮转器，释放资源
	// 重复调用应返回 [ErrClosed]
	Close() error

	// Rotate 手动触发一次轮转
	Rotate() error
}
