package xflog

import "errors"

var (
	// ErrInvalidLevel 表示传入了不在八个固定级别内的级别标记。
	// 校验是大小写敏感的精确匹配，"ERROR"、"Error" 都是无效的。
	ErrInvalidLevel = errors.New("xflog: invalid log level")

	// ErrInvalidMaxSize 表示轮转阈值不是正整数。
	ErrInvalidMaxSize = errors.New("xflog: max file size must be positive")

	// ErrAlreadyInitialized 表示进程默认 logger 已经初始化过。
	// Init 只允许调用一次；测试中可先 ResetDefault 再重新 Init。
	ErrAlreadyInitialized = errors.New("xflog: default logger already initialized")
)
