// Package log 提供日志相关的子包。
//
// 子包列表：
//   - xflog: 文件日志引擎，级别校验、占位符插值、多态载荷格式化
//   - xrotate: 日志文件轮转，时间戳重命名与 lumberjack 两种策略
//
// 设计原则：
//   - 每次写入都是完整独立的操作，不持有跨调用的文件状态
//   - 路径与阈值构造时确定，之后不可变
//   - I/O 失败原样返回，不重试、不吞掉
package log
