package xfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// containsNullByte 检测路径是否包含空字节。
// Linux 内核在 VFS 层会在空字节处截断路径，导致 Go 代码与操作系统
// 看到的路径不一致。
func containsNullByte(path string) bool {
	return strings.ContainsRune(path, 0)
}

// hasDotDotSegment 检测路径中是否包含 ".." 作为独立路径段。
// 同时将 '/' 和 '\' 视为分隔符，以检测 Windows 风格路径穿越（即使在 Linux 上）。
func hasDotDotSegment(path string) bool {
	i := 0
	for i < len(path) {
		// 跳过分隔符
		if path[i] == '/' || path[i] == '\\' {
			i++
			continue
		}
		// 找到段的结束位置
		j := i
		for j < len(path) && path[j] != '/' && path[j] != '\\' {
			j++
		}
		// 检查段是否恰好为 ".."
		if j-i == 2 && path[i] == '.' && path[i+1] == '.' {
			return true
		}
		i = j
	}
	return false
}

// SanitizePath 对日志文件路径进行格式校验和规范化
//
// 功能：
//   - 路径规范化（消除 . 和冗余斜杠）
//   - 阻止相对路径穿越（如 "../etc/passwd"）
//   - 拒绝空路径和显式目录路径（尾随 "/" 或 "\"）
//
// 安全边界：本函数仅做格式净化，不限制目标目录，也不解析符号链接。
// 日志路径由部署方配置，属于可信输入；绝对路径（包括经 Clean 解析
// ".." 后的绝对路径）被视为合法。
//
// 设计决策: 在 Linux 上尾随反斜杠的文件名理论上合法，但几乎总是
// 跨平台拼接错误，为避免语义歧义统一拒绝。
func SanitizePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename is required: %w", ErrEmptyPath)
	}

	if containsNullByte(filename) {
		return "", fmt.Errorf("filename contains null byte: %w", ErrNullByte)
	}

	// 尾随分隔符表示目录，必须在 filepath.Clean 之前检查，
	// 因为 Clean 会移除尾部斜杠
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, "\\") {
		return "", fmt.Errorf("path is a directory: %w", ErrInvalidPath)
	}

	cleaned := filepath.Clean(filename)

	// 不能使用 strings.Contains(cleaned, "..")：会误伤合法文件名
	// （如 "app..2024.log"）。按路径段精确判断。
	if hasDotDotSegment(cleaned) {
		return "", fmt.Errorf("path traversal in filename: %w", ErrPathTraversal)
	}

	// 获取文件名部分，确保不为空
	base := filepath.Base(cleaned)
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("no file name specified: %w", ErrInvalidPath)
	}

	return cleaned, nil
}
