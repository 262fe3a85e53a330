// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 文件操作工具，目录创建、路径处理等
//   - xjson: JSON 序列化工具，Pretty 格式化输出
//   - xdump: 集合类型的确定性详细导出（调试/日志展示用）
//
// 设计原则：
//   - 提供常用的文件和路径操作封装
//   - 安全处理路径遍历
//   - 跨平台兼容
package util
