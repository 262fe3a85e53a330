// Package xfile 提供日志文件路径相关的基础工具。
//
// 本包服务于日志写入路径：构造期校验目标文件名的格式（SanitizePath），
// 写入前确保父目录存在（EnsureDir）。所有函数都是无状态的纯函数或
// 幂等操作，可在每次写入前重复调用。
//
// # 路径格式校验
//
// SanitizePath 只做格式净化：拒绝空路径、空字节、目录路径（尾随分隔符）
// 和相对路径穿越（".." 路径段）。它不限制目标目录，也不解析符号链接——
// 日志路径由部署方配置，属于可信输入，不需要沙箱隔离语义。
//
// 路径穿越检测按路径段精确匹配，只有 ".." 作为独立段时才被拒绝，
// 以 ".." 开头的合法文件名（如 "..archive.log"）不会被误判。
//
// # 目录创建
//
// EnsureDir 在每次日志写入前调用，目录被外部删除后下一次写入会自动重建。
// 底层使用 os.MkdirAll，目录已存在时不报错也不修改其权限。
//
// # 错误处理
//
// 预定义错误变量支持 [errors.Is] 判断：
//
//	_, err := xfile.SanitizePath("../etc/passwd")
//	if errors.Is(err, xfile.ErrPathTraversal) {
//	    // 处理路径穿越
//	}
package xfile
