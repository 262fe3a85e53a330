package xdump

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// maxDepth 嵌套渲染深度上限，超过后截断为 '...'。
// 正常日志载荷远达不到此深度；上限同时兜底了意外的自引用集合。
const maxDepth = 32

// Export 将任意值渲染为确定性的人读导出格式。
//
// 序列（slice/array）按下标导出，映射按键的渲染形式排序后导出，
// 标量直接渲染。输出形状见包文档。
func Export(v any) string {
	var b strings.Builder
	writeValue(&b, reflect.ValueOf(v), 0)
	return b.String()
}

// writeValue 渲染单个值，indent 为当前嵌套层级
func writeValue(b *strings.Builder, rv reflect.Value, depth int) {
	if depth > maxDepth {
		b.WriteString("'...'")
		return
	}
	if !rv.IsValid() {
		b.WriteString("NULL")
		return
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			b.WriteString("NULL")
			return
		}
		writeValue(b, rv.Elem(), depth)
	case reflect.Bool:
		b.WriteString(strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		b.WriteString(strconv.FormatFloat(rv.Float(), 'g', -1, 64))
	case reflect.String:
		writeQuoted(b, rv.String())
	case reflect.Slice, reflect.Array:
		writeSequence(b, rv, depth)
	case reflect.Map:
		writeMapping(b, rv, depth)
	default:
		// 结构体、通道等非集合非标量值：退化为引号包裹的默认渲染，
		// 渲染永远不失败
		writeQuoted(b, fmt.Sprint(rv.Interface()))
	}
}

// writeQuoted 单引号包裹字符串，转义反斜杠和单引号
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '\'' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('\'')
}

// writeSequence 按下标导出 slice/array
func writeSequence(b *strings.Builder, rv reflect.Value, depth int) {
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		b.WriteString("NULL")
		return
	}
	b.WriteString("array (\n")
	for i := 0; i < rv.Len(); i++ {
		writeIndent(b, depth+1)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(" => ")
		writeValue(b, rv.Index(i), depth+1)
		b.WriteString(",\n")
	}
	writeIndent(b, depth)
	b.WriteByte(')')
}

// mapEntry 渲染后的映射条目，按键的渲染形式排序
type mapEntry struct {
	key string
	val reflect.Value
}

// writeMapping 按键排序后导出映射
func writeMapping(b *strings.Builder, rv reflect.Value, depth int) {
	if rv.IsNil() {
		b.WriteString("NULL")
		return
	}

	entries := make([]mapEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		var kb strings.Builder
		writeValue(&kb, iter.Key(), depth+1)
		entries = append(entries, mapEntry{key: kb.String(), val: iter.Value()})
	}
	// Go map 迭代顺序随机，按渲染后的键排序保证输出确定性
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	b.WriteString("array (\n")
	for _, e := range entries {
		writeIndent(b, depth+1)
		b.WriteString(e.key)
		b.WriteString(" => ")
		writeValue(b, e.val, depth+1)
		b.WriteString(",\n")
	}
	writeIndent(b, depth)
	b.WriteByte(')')
}

// writeIndent 写入两空格缩进
func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
