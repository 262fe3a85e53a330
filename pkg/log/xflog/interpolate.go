package xflog

import (
	"fmt"
	"strings"
)

// Interpolate 把 context 中的值代入消息里的 {key} 占位符
//
// context 中存在的每个键，其 {key} 形式在消息中的所有字面出现都被
// 替换为值的字符串形式；消息中没有匹配键的占位符原样保留；context
// 中未被引用的键被忽略。替换是单趟线性扫描（strings.Replacer 语义），
// 替换产物中即使出现新的占位符也不会被二次替换。
func Interpolate(message string, context map[string]any) string {
	if len(context) == 0 || !strings.Contains(message, "{") {
		return message
	}

	pairs := make([]string, 0, 2*len(context))
	for key, value := range context {
		pairs = append(pairs, "{"+key+"}", stringify(value))
	}
	return strings.NewReplacer(pairs...).Replace(message)
}

// stringify 渲染占位符的替换值
//
// nil 渲染为空字符串（与既有消费方约定一致），其余值走 fmt 默认
// 渲染（fmt.Stringer、error 自动生效）。
func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
