package xrotate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLumberjackInterface 验证具体实现满足 Rotator 接口
func TestLumberjackInterface(t *testing.T) {
	var _ Rotator = (*lumberjackRotator)(nil)
}

// TestNewLumberjackWithOptions 测试使用 Option 创建
func TestNewLumberjackWithOptions(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "options.log")

	r, err := NewLumberjack(filename,
		WithMaxSize(50),
		WithMaxBackups(10),
		WithMaxAge(7),
		WithCompress(false),
		WithLocalTime(true),
	)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Write([]byte("test with options\n"))
	assert.NoError(t, err)
}

// TestNewLumberjackWithNilOption 测试 nil option 被静默忽略
func TestNewLumberjackWithNilOption(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nil_opt.log")

	r, err := NewLumberjack(filename, nil, WithMaxSize(50), nil)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Write([]byte("test with nil option\n"))
	assert.NoError(t, err)
}

// TestLumberjackValidation 测试配置验证
func TestLumberjackValidation(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		opts    []LumberjackOption
		wantErr error
	}{
		{
			name:    "空文件名",
			path:    "",
			wantErr: ErrEmptyFilename,
		},
		{
			name:    "MaxSizeMB 为零",
			path:    "app.log",
			opts:    []LumberjackOption{WithMaxSize(0)},
			wantErr: ErrInvalidMaxSize,
		},
		{
			name:    "MaxSizeMB 超出上限",
			path:    "app.log",
			opts:    []LumberjackOption{WithMaxSize(maxSizeMB + 1)},
			wantErr: ErrInvalidMaxSize,
		},
		{
			name:    "MaxBackups 为负数",
			path:    "app.log",
			opts:    []LumberjackOption{WithMaxBackups(-1)},
			wantErr: ErrInvalidMaxBackups,
		},
		{
			name:    "MaxAgeDays 为负数",
			path:    "app.log",
			opts:    []LumberjackOption{WithMaxAge(-1)},
			wantErr: ErrInvalidMaxAge,
		},
		{
			name:    "清理策略全部关闭",
			path:    "app.log",
			opts:    []LumberjackOption{WithMaxBackups(0), WithMaxAge(0)},
			wantErr: ErrNoCleanupPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLumberjack(tt.path, tt.opts...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestLumberjackClosed 测试关闭语义
func TestLumberjackClosed(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "closed.log")

	r, err := NewLumberjack(filename)
	require.NoError(t, err)

	require.NoError(t, r.Close())

	_, err = r.Write([]byte("x\n"))
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, r.Rotate(), ErrClosed)
	assert.ErrorIs(t, r.Close(), ErrClosed)
}
