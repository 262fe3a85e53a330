// Package xflog 提供面向单进程脚本的极简分级文件日志引擎。
//
// 引擎只做四件事：级别校验、载荷格式化（含占位符插值）、按大小轮转、
// 逐条追加写入。每个日志调用都在返回前同步完成全部文件 I/O，没有
// 缓冲、没有后台 goroutine、没有取消语义。需要高吞吐异步管道的服务
// 端场景不是本包的目标。
//
// # 行格式
//
// 每条日志恰好一行（平台换行符结尾）：
//
//	[2024-01-02 15:04:05] [ERROR] something failed
//	[2024-01-02 15:04:05] [INFO] [string] service started
//
// 时间戳为本地时间、秒级精度。类型标签（[string]、[boolean]、[array]、
// 对象的具体类型名等）对每条日志都会计算，但只在 INFO 级别输出——
// 这是与既有日志消费方约定的行格式契约的一部分，其他级别刻意省略
// 以保持行紧凑，依赖非 INFO 级别类型可见性的调用方得不到它。
//
// 本引擎写出的日志文件与既有 PHP 侧消费方共享，类型标签、集合导出
// 格式（见 xdump）和运行时错误桥接的行文案都保持 PHP 侧兼容。
//
// # 级别
//
// 八个固定级别（严重度降序）：emergency, alert, critical, error,
// warning, notice, info, debug。[FileLogger.Log] 对级别做大小写敏感的
// 精确匹配，未识别的级别返回 [ErrInvalidLevel] 且不产生任何写入；
// [FileLogger.Write] 是跳过校验的底层入口。
//
// # 插值
//
// 消息中的 {key} 占位符用 context 映射中的同名值替换；没有匹配键的
// 占位符原样保留，未被引用的 context 键被忽略。单趟线性替换，不做
// 递归二次替换。
//
// # 轮转
//
// 写入前发现目标文件大小严格超过阈值时，旧文件被重命名为
// <path>.<unix秒>，新文件由后续追加隐式重建（见 xrotate 包文档，
// 含同秒冲突的既定限制）。轮转永远不会丢失触发它的那条新日志——
// 新日志总是落在轮转后的新文件里。
//
// # 运行时错误桥接
//
// [FileLogger.ErrorHandler] 和 [FileLogger.ExceptionHandler] 把宿主
// 运行时的错误/异常转写为 ERROR 级日志；[FileLogger.RegisterHandlers]
// 把引擎挂接为标准库 log 包的输出目标，并返回解除挂接的 restore
// 函数。未捕获 panic 的桥接用法：
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        logger.ExceptionHandler(r)
//	        panic(r) // 记录后保持原有崩溃行为
//	    }
//	}()
//
// # 进程级默认 logger
//
// 包级转发函数使用显式生命周期的进程默认 logger：[Init] 显式初始化
// （只允许一次），[Default] 在未初始化时降级到默认路径，[ResetDefault]
// 供测试复位。推荐显式构造并传递 [FileLogger]（依赖注入），包级函数
// 只服务脚手架和小脚本。
//
// # 并发
//
// 单个 FileLogger 的写入进程内并发安全；跨进程共享同一目标文件时，
// 检查大小 → 重命名 → 追加 序列不是原子的，设计上假定单写入者。
package xflog
