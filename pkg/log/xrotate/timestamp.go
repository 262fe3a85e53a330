package xrotate

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/omeyang/logkit/pkg/util/xfile"
)

// DefaultFilePerm 默认日志文件权限
//
// 日志文件通常需要被采集端或运维读取，默认放开同组/其他读权限。
const DefaultFilePerm os.FileMode = 0644

// timestampConfig 时间戳轮转器配置
type timestampConfig struct {
	// FilePerm 日志文件创建权限
	// 默认 DefaultFilePerm，仅允许权限位（0000~0777）
	FilePerm os.FileMode
}

// TimestampOption 时间戳轮转器配置选项函数
type TimestampOption func(*timestampConfig)

// WithFilePerm 设置日志文件创建权限
func WithFilePerm(mode os.FileMode) TimestampOption {
	return func(c *timestampConfig) {
		c.FilePerm = mode
	}
}

// timestampRotator 时间戳 Rotator 实现
//
// 不持有文件句柄：每次 Write 重新打开目标文件追加后立即关闭，
// 写入之间没有任何残留状态。文件或父目录被外部删除后，下一次
// Write 会自动重建。
type timestampRotator struct {
	path     string
	maxBytes int64
	filePerm os.FileMode

	// mu 保护 检查大小 → 重命名 → 追加 序列的进程内原子性
	mu sync.Mutex

	closed atomic.Bool

	// 可注入的系统调用与时钟（nil 时使用标准库），仅用于测试
	nowFn    func() time.Time
	statFn   func(string) (os.FileInfo, error)
	renameFn func(oldpath, newpath string) error
}

// NewTimestamp 创建时间戳轮转器
//
// 参数:
//   - path: 日志文件路径（必需，会做格式校验和规范化）
//   - maxBytes: 大小阈值（字节，必须为正）。写入前发现目标文件大小
//     严格大于该阈值时触发轮转
//   - opts: 可选配置项
//
// 轮转把旧文件重命名为 <path>.<unix秒>，不预创建新文件，后续追加
// 写入以 O_CREATE 隐式重建。同一秒内的第二次轮转会覆盖前一次的
// 轮转文件（见包文档"既定限制"）。
func NewTimestamp(path string, maxBytes int64, opts ...TimestampOption) (Rotator, error) {
	if path == "" {
		return nil, ErrEmptyFilename
	}
	if maxBytes <= 0 {
		return nil, fmt.Errorf("%w: got %d, want > 0", ErrInvalidMaxBytes, maxBytes)
	}

	cfg := timestampConfig{FilePerm: DefaultFilePerm}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// FilePerm 仅允许权限位，拒绝文件类型位、setuid/setgid 等
	if cfg.FilePerm&^os.FileMode(0o777) != 0 {
		return nil, fmt.Errorf("%w: got %04o, only permission bits (0000~0777) allowed",
			ErrInvalidFilePerm, cfg.FilePerm)
	}

	safePath, err := xfile.SanitizePath(path)
	if err != nil {
		return nil, err
	}

	return &timestampRotator{
		path:     safePath,
		maxBytes: maxBytes,
		filePerm: cfg.FilePerm,
	}, nil
}

// Write 实现 io.Writer 接口
//
// 顺序：检查大小并按需轮转 → 确保父目录存在 → 追加写入。
// 父目录检查必须紧贴追加执行，目录被外部删除后本次写入仍能成功。
func (r *timestampRotator) Write(p []byte) (n int, err error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.rotateOversize(); err != nil {
		return 0, err
	}

	if err := xfile.EnsureDir(r.path); err != nil {
		return 0, err
	}

	//#nosec G302 G304 -- 路径和权限由构造期校验过的配置决定
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, r.filePerm)
	if err != nil {
		return 0, err
	}

	n, werr := f.Write(p)
	cerr := f.Close()
	if werr != nil {
		return n, werr
	}
	return n, cerr
}

// rotateOversize 目标文件大小严格超过阈值时重命名为 <path>.<unix秒>
//
// stat 失败（最常见是文件尚不存在）视为无需轮转；重命名失败向上传播。
// 调用方必须持有 r.mu。
func (r *timestampRotator) rotateOversize() error {
	info, err := r.stat(r.path)
	if err != nil {
		return nil
	}
	// 阈值判定是"严格大于"：恰好等于阈值的文件不轮转
	if info.Size() <= r.maxBytes {
		return nil
	}
	return r.renameAside()
}

// renameAside 把当前文件重命名为轮转文件
// 调用方必须持有 r.mu。
func (r *timestampRotator) renameAside() error {
	rotated := fmt.Sprintf("%s.%d", r.path, r.now().Unix())
	return r.rename(r.path, rotated)
}

// Rotate 手动触发一次轮转
//
// 与按大小自动轮转不同，只要目标文件存在就无条件重命名。
// 文件不存在时为空操作。
func (r *timestampRotator) Rotate() error {
	if r.closed.Load() {
		return ErrClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.stat(r.path); err != nil {
		return nil
	}
	return r.renameAside()
}

// Close 实现 io.Closer 接口
//
// 时间戳轮转器不持有句柄，Close 只标记关闭状态。
// 关闭后 Write 和 Rotate 返回 [ErrClosed]，重复 Close 同样返回 [ErrClosed]。
func (r *timestampRotator) Close() error {
	if r.closed.Swap(true) {
		return ErrClosed
	}
	return nil
}

func (r *timestampRotator) now() time.Time {
	if r.nowFn != nil {
		return r.nowFn()
	}
	return time.Now()
}

func (r *timestampRotator) stat(path string) (os.FileInfo, error) {
	if r.statFn != nil {
		return r.statFn(path)
	}
	return os.Stat(path)
}

func (r *timestampRotator) rename(oldpath, newpath string) error {
	if r.renameFn != nil {
		return r.renameFn(oldpath, newpath)
	}
	return os.Rename(oldpath, newpath)
}
