// Package xjson 提供面向日志输出的 JSON 序列化工具函数。
//
// # 功能概览
//
//   - [PrettyE]: 将任意值序列化为两空格缩进的 JSON 字符串，返回 (string, error)。
//     失败时返回空字符串和 [ErrMarshal] 包装的错误。
//   - [Pretty]: 便捷版本，用于日志正文输出。失败时返回
//     "<marshal error: ...>" 标记字符串（非合法 JSON），便于在日志中识别序列化问题。
//
// # 与 encoding/json 默认行为的差异
//
// 本包禁用 HTML 转义：斜杠和 <, >, & 保持原样，非 ASCII 字符不转义为
// \uXXXX 形式。日志正文面向人读，转义后的 URL（"https:\/\/..."）和
// 中文（中文）都会显著降低可读性。
package xjson
