package xjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// PrettyE 将任意值序列化为两空格缩进的 JSON 字符串。
//
// 与 json.MarshalIndent 的差异：禁用 HTML 转义，斜杠和非 ASCII 字符
// 保持原样输出。失败时返回 [ErrMarshal] 包装的错误。
func PrettyE(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	// json.Encoder 总是追加一个换行符，日志正文不需要
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Pretty 将任意值序列化为格式化的 JSON 字符串。
// 用于日志正文输出。序列化失败时返回 "<marshal error: ...>"。
func Pretty(v any) string {
	s, err := PrettyE(v)
	if err != nil {
		return fmt.Sprintf("<marshal error: %v>", err)
	}
	return s
}
