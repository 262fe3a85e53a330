package xjson

import "errors"

// ErrMarshal 表示 JSON 序列化失败（如包含循环引用或不可序列化类型）。
var ErrMarshal = errors.New("xjson: marshal failed")
