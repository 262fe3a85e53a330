package xflog

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/omeyang/logkit/pkg/util/xdump"
	"github.com/omeyang/logkit/pkg/util/xjson"
)

// payloadKind 载荷变体标记
type payloadKind uint8

const (
	kindNull payloadKind = iota
	kindBool
	kindInt
	kindString
	kindCollection
	kindObject
)

// Payload 日志载荷的带标签变体
//
// 载荷在调用边界被解析为六种变体之一（Null | Bool | Int | String |
// Collection | Object），格式化逻辑按变体分派，写入路径上不再做
// 运行时类型探测。任意值可经 [NewPayload] 分类，也可用各构造函数
// 显式指定变体。
type Payload struct {
	kind payloadKind
	b    bool
	i    int64
	s    string
	v    any
}

// NullPayload 空载荷，渲染为字面量 null
func NullPayload() Payload {
	return Payload{kind: kindNull}
}

// BoolPayload 布尔载荷，渲染为 true/false
func BoolPayload(b bool) Payload {
	return Payload{kind: kindBool, b: b}
}

// IntPayload 整数载荷，渲染为十进制形式
func IntPayload(i int64) Payload {
	return Payload{kind: kindInt, i: i}
}

// StringPayload 字符串载荷，原样作为日志正文
func StringPayload(s string) Payload {
	return Payload{kind: kindString, s: s}
}

// CollectionPayload 集合载荷（序列或映射），渲染为 xdump 导出格式
func CollectionPayload(v any) Payload {
	return Payload{kind: kindCollection, v: v}
}

// ObjectPayload 对象载荷
//
// 渲染优先使用值自带的字符串化能力（fmt.Stringer、error），否则
// 退化为不转义斜杠和非 ASCII 字符的缩进 JSON。类型标签为对象的
// 具体类型名而非通用标签。
func ObjectPayload(v any) Payload {
	return Payload{kind: kindObject, v: v}
}

// NewPayload 在调用边界把任意值分类为载荷变体
//
// 分类规则（优先级从高到低）：nil → Null；布尔 → Bool；各种宽度的
// 有符号/无符号整数 → Int；字符串 → String；slice/array/map →
// Collection；其余（结构体、指针、浮点数、error 等）→ Object。
func NewPayload(v any) Payload {
	if v == nil {
		return NullPayload()
	}

	switch x := v.(type) {
	case bool:
		return BoolPayload(x)
	case int:
		return IntPayload(int64(x))
	case int8:
		return IntPayload(int64(x))
	case int16:
		return IntPayload(int64(x))
	case int32:
		return IntPayload(int64(x))
	case int64:
		return IntPayload(x)
	case uint:
		return IntPayload(int64(x))
	case uint8:
		return IntPayload(int64(x))
	case uint16:
		return IntPayload(int64(x))
	case uint32:
		return IntPayload(int64(x))
	case uint64:
		// 超出 int64 表示范围的 uint64 走对象路径，避免截断
		if x <= math.MaxInt64 {
			return IntPayload(int64(x))
		}
		return ObjectPayload(x)
	case string:
		return StringPayload(x)
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return CollectionPayload(v)
	default:
		return ObjectPayload(v)
	}
}

// 通用类型标签，与既有 PHP 侧消费方的 gettype 命名保持一致
const (
	tagNull       = "NULL"
	tagBoolean    = "boolean"
	tagInteger    = "integer"
	tagString     = "string"
	tagCollection = "array"
)

// Render 渲染载荷，返回日志正文和类型标签
//
// 类型标签对每个载荷都会计算，但引擎只在 INFO 级别的行中输出它
// （见包文档"行格式"）。渲染永远不失败：对象序列化失败时正文为
// xjson 的错误标记字符串。
func (p Payload) Render() (body, typeTag string) {
	switch p.kind {
	case kindBool:
		return strconv.FormatBool(p.b), tagBoolean
	case kindInt:
		return strconv.FormatInt(p.i, 10), tagInteger
	case kindString:
		return p.s, tagString
	case kindCollection:
		return xdump.Export(p.v), tagCollection
	case kindObject:
		return renderObject(p.v)
	default:
		return "null", tagNull
	}
}

// renderObject 渲染对象载荷
//
// 优先级：fmt.Stringer → error → 缩进 JSON（斜杠与非 ASCII 不转义）。
// 类型标签始终是具体类型名，覆盖通用标签。
func renderObject(v any) (body, typeTag string) {
	if v == nil {
		return "null", tagNull
	}

	tag := typeName(v)
	switch x := v.(type) {
	case fmt.Stringer:
		return x.String(), tag
	case error:
		return x.Error(), tag
	default:
		return xjson.Pretty(v), tag
	}
}

// typeName 返回对象的具体类型名，指针逐层解引用后取元素类型
func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
