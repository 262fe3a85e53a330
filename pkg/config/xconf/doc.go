// Package xconf 提供日志引擎的配置加载，基于 koanf 实现。
//
// # 设计理念
//
// xconf 定位为最小化配置加载器：把 YAML/JSON 配置文件（或字节数据）
// 解析为 [Config]，填充缺省值并校验，再经 [Config.Build] 构造出
// xflog.FileLogger。不负责更广义的配置治理（环境变量覆盖、多级合并），
// 这些能力由上层按需实现。
//
// # 支持的格式
//
//   - YAML（推荐）：.yaml, .yml
//   - JSON：.json
//
// # 配置与引擎的关系
//
// FileLogger 的路径和阈值在构造后不可变。配置热更新因此不是"改动
// 现有实例"，而是"构造新实例再换入"：[Watch] 在文件变更时重新加载
// 并把新的 Config 交给回调，调用方用 Build 构造新 logger 后通过
// xflog.SetDefault（或自己的注入点）完成替换。
//
// # 配置监视
//
// [Watch] 基于 fsnotify 监视配置文件所在目录（而非文件本身，兼容
// vim/emacs 的原子写入），内置防抖。返回的 stop 函数解除监视并
// 释放资源，stop 返回后不再有回调执行。
package xconf
