// Package xdump 提供集合类型的确定性人读导出格式。
//
// 日志正文中的序列/映射类载荷不使用 JSON，而是使用逐行的
// key => value 导出格式，与日志文件既有的 PHP 侧消费方
// （var_export 风格）保持兼容：
//
//	array (
//	  0 => 'first',
//	  'name' => 'bob',
//	  'nested' => array (
//	    'n' => 42,
//	  ),
//	)
//
// # 确定性
//
// Go 的 map 迭代顺序随机，导出前按键的渲染形式排序，保证同一
// 输入总是产生字节级相同的输出（可用于日志断言和去重）。
//
// # 范围
//
// 本包只负责渲染，不做循环引用检测：日志载荷应为普通数据集合。
// 嵌套深度超过上限时截断为 '...'，避免恶意或异常嵌套拖垮写入路径。
package xdump
