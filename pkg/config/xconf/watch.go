package xconf

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchCallback 配置变更回调。
//
// 重载成功时 err 为 nil 且 cfg 为新配置；重载失败（文件被写坏、
// 校验不通过）时 err 非 nil，cfg 为零值，调用方应继续使用旧配置。
type WatchCallback func(cfg Config, err error)

// WatchOption 监视选项。
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce time.Duration
}

func defaultWatchOptions() *watchOptions {
	return &watchOptions{
		debounce: 100 * time.Millisecond,
	}
}

// WithDebounce 设置防抖时间。
//
// 指定时间内的多次变更只触发一次重载，默认 100ms。
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		o.debounce = d
	}
}

// Watch 监视配置文件变更并自动重载。
//
// 文件变更（防抖之后）触发 [Load]，结果经 callback 交回调用方；
// 典型用法是在回调中 Build 新 logger 并换入 xflog.SetDefault。
// 返回的 stop 函数解除监视并释放资源，stop 返回后不再有回调执行。
// 不要在回调内部调用 stop。
//
// 设计决策: 监视配置文件所在目录而非文件本身。编辑器保存文件时
// 可能先写临时文件再 rename（vim/emacs 的原子写入），直接监视
// 文件会在 rename 后丢失事件。
func Watch(path string, callback WatchCallback, opts ...WatchOption) (stop func(), err error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if _, err := detectFormat(path); err != nil {
		return nil, err
	}

	options := defaultWatchOptions()
	for _, opt := range opts {
		opt(options)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xconf: failed to create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsWatcher.Add(dir); err != nil {
		closeErr := fsWatcher.Close()
		return nil, errors.Join(
			fmt.Errorf("xconf: failed to watch directory %s: %w", dir, err),
			closeErr,
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &watcher{
		path:     path,
		fs:       fsWatcher,
		callback: callback,
		debounce: options.debounce,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go w.run()

	return w.stop, nil
}

// watcher 单个配置文件的监视循环。
type watcher struct {
	path     string
	fs       *fsnotify.Watcher
	callback WatchCallback
	debounce time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// stop 解除监视。返回后不再有回调执行。
func (w *watcher) stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	w.cancel()
	_ = w.fs.Close()
	<-w.done
}

// run 监视循环。
func (w *watcher) run() {
	defer close(w.done)
	filename := filepath.Base(w.path)

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleEvent(event, filename)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.invoke(Config{}, fmt.Errorf("xconf: watch error: %w", err))
		}
	}
}

// handleEvent 处理文件系统事件。
func (w *watcher) handleEvent(event fsnotify.Event, filename string) {
	// 只处理目标配置文件的事件
	if filepath.Base(event.Name) != filename {
		return
	}

	// Write: 直接修改; Create: 新建; Rename: 原子写入模式
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	// 防抖：重置计时器
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		cfg, err := Load(w.path)
		w.invoke(cfg, err)
	})
}

// invoke 在持锁状态下执行回调，与 stop 串行化。
func (w *watcher) invoke(cfg Config, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped || w.callback == nil {
		return
	}
	w.callback(cfg, err)
}
