// Package config 提供配置相关的子包。
//
// 子包列表：
//   - xconf: 日志引擎配置加载，基于 koanf，支持 fsnotify 热重载
package config
