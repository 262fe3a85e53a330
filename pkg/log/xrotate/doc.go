// Package xrotate 提供日志文件的按大小轮转。
//
// 提供两种 [Rotator] 实现：
//
//   - [NewTimestamp]: 时间戳轮转器，引擎默认。每次写入前检查目标文件大小，
//     超过阈值时把旧文件重命名为 <path>.<unix秒>，随后的追加写入自动重建
//     新文件。不持有文件句柄，每次写入都是完整独立的操作，适合单写入者的
//     简单进程。
//   - [NewLumberjack]: 基于 lumberjack 的托管轮转器。提供备份数量/天数
//     清理和 gzip 压缩，适合需要备份治理的长驻服务。
//
// # 时间戳轮转器的既定限制
//
// 轮转文件名的时间戳精度为秒。同一秒内连续触发两次轮转时，后一次
// 重命名会覆盖前一次产生的轮转文件（最后一次胜出）。这是与既有日志
// 消费方约定的文件命名契约的一部分，不视为缺陷，实现上刻意保留。
//
// 轮转产生的历史文件不会被自动清理，堆积由调用方负责；需要自动清理
// 时应改用 [NewLumberjack]。
//
// # 并发
//
// 两种实现的 Write 都是进程内并发安全的。时间戳轮转器的
// 检查大小 → 重命名 → 追加 序列跨进程不是原子的：多个进程写同一
// 目标文件可能丢失轮转或交错写入，设计上假定单写入者。
package xrotate
