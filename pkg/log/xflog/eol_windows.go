//go:build windows

package xflog

// eol 平台换行符，每条日志行以其结尾
const eol = "\r\n"
