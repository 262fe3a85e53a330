package xflog

import (
	"fmt"
	"strings"
)

// Level 日志级别标记
//
// 值为小写的规范形式。合法集合固定为八个级别，没有数值排序语义，
// 级别之间也不做阈值过滤——每个级别都有独立的入口方法。
type Level string

// 八个固定级别，严重度降序排列
const (
	LevelEmergency Level = "emergency"
	LevelAlert     Level = "alert"
	LevelCritical  Level = "critical"
	LevelError     Level = "error"
	LevelWarning   Level = "warning"
	LevelNotice    Level = "notice"
	LevelInfo      Level = "info"
	LevelDebug     Level = "debug"
)

// Valid 报告级别是否属于固定集合
//
// 大小写敏感的精确匹配：只有小写规范形式是合法的。
func (l Level) Valid() bool {
	switch l {
	case LevelEmergency, LevelAlert, LevelCritical, LevelError,
		LevelWarning, LevelNotice, LevelInfo, LevelDebug:
		return true
	default:
		return false
	}
}

// Tag 返回级别在日志行中的大写标记形式
func (l Level) Tag() string {
	return strings.ToUpper(string(l))
}

// String 实现 fmt.Stringer
func (l Level) String() string {
	return string(l)
}

// ParseLevel 解析字符串为日志级别
//
// 与 Valid 一致，只接受小写规范形式；其余输入返回 [ErrInvalidLevel]。
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}

// MarshalText 实现 encoding.TextMarshaler 接口
//
// 支持配置序列化场景（YAML/JSON）。
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler 接口
//
// 支持从配置文件直接反序列化日志级别。
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
