package xflog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/logkit/pkg/util/xfile"
)

// fixedNow 测试用的固定时刻
var fixedNow = time.Date(2024, 1, 2, 15, 4, 5, 0, time.Local)

// newTestLogger 创建固定时钟的引擎（测试辅助）
func newTestLogger(t *testing.T, maxSize int64) (*FileLogger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := New(path, maxSize, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return l, path
}

// readLines 读取日志文件的全部行（测试辅助）
func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), eol), eol)
}

// TestNewValidation 测试构造参数校验
func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		maxSize int64
		wantErr error
	}{
		{name: "阈值为零", path: "app.log", maxSize: 0, wantErr: ErrInvalidMaxSize},
		{name: "阈值为负", path: "app.log", maxSize: -5, wantErr: ErrInvalidMaxSize},
		{name: "空路径", path: "", maxSize: 1024, wantErr: xfile.ErrEmptyPath},
		{name: "目录路径", path: "logs/", maxSize: 1024, wantErr: xfile.ErrInvalidPath},
		{name: "路径穿越", path: "../app.log", maxSize: 1024, wantErr: xfile.ErrPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.path, tt.maxSize)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestImmutableAttributes 测试构造后属性不可变可读
func TestImmutableAttributes(t *testing.T) {
	l, path := newTestLogger(t, 2048)
	assert.Equal(t, path, l.Path())
	assert.Equal(t, int64(2048), l.MaxFileSize())
}

// TestLogAllLevels 测试八个级别的通用入口
func TestLogAllLevels(t *testing.T) {
	for _, level := range allLevels {
		t.Run(string(level), func(t *testing.T) {
			l, path := newTestLogger(t, 1<<20)

			require.NoError(t, l.Log(level, "m", nil))

			lines := readLines(t, path)
			require.NotEmpty(t, lines)
			assert.Contains(t, lines[0], "["+level.Tag()+"]")
			assert.Contains(t, lines[0], "m")
		})
	}
}

// TestLogInvalidLevel 测试未识别级别不产生写入
func TestLogInvalidLevel(t *testing.T) {
	l, path := newTestLogger(t, 1<<20)

	err := l.Log(Level("not-a-level"), "m", nil)
	require.ErrorIs(t, err, ErrInvalidLevel)
	assert.Contains(t, err.Error(), "not-a-level")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "失败的调用不应创建日志文件")
}

// TestLogInterpolation 测试通用入口的占位符插值
func TestLogInterpolation(t *testing.T) {
	l, path := newTestLogger(t, 1<<20)

	require.NoError(t, l.Notice("Hi {name}", map[string]any{"name": "Bob", "extra": 1}))

	lines := readLines(t, path)
	assert.Equal(t, "[2024-01-02 15:04:05] [NOTICE] Hi Bob", lines[0])
}

// TestWriteLineFormat 测试行格式与 INFO 专属的类型标签
func TestWriteLineFormat(t *testing.T) {
	t.Run("INFO 行携带类型标签", func(t *testing.T) {
		l, path := newTestLogger(t, 1<<20)

		require.NoError(t, l.Write(StringPayload("service started"), LevelInfo))

		lines := readLines(t, path)
		assert.Equal(t, "[2024-01-02 15:04:05] [INFO] [string] service started", lines[0])
	})

	t.Run("同一载荷在 ERROR 行省略类型标签", func(t *testing.T) {
		l, path := newTestLogger(t, 1<<20)

		require.NoError(t, l.Write(StringPayload("service started"), LevelError))

		lines := readLines(t, path)
		assert.Equal(t, "[2024-01-02 15:04:05] [ERROR] service started", lines[0])
		assert.NotContains(t, lines[0], "[string]")
	})

	t.Run("INFO 集合载荷的标签为 array", func(t *testing.T) {
		l, path := newTestLogger(t, 1<<20)

		require.NoError(t, l.Write(CollectionPayload([]string{"a"}), LevelInfo))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data),
			"[2024-01-02 15:04:05] [INFO] [array] array ("))
	})

	t.Run("Write 不校验级别", func(t *testing.T) {
		l, path := newTestLogger(t, 1<<20)

		require.NoError(t, l.Write(StringPayload("m"), Level("weird")))

		lines := readLines(t, path)
		assert.Equal(t, "[2024-01-02 15:04:05] [WEIRD] m", lines[0])
	})

	t.Run("大写 INFO token 同样携带类型标签", func(t *testing.T) {
		l, path := newTestLogger(t, 1<<20)

		// 标签按渲染后的级别标记判定：未校验入口下传入 "INFO" 与
		// 传入规范小写 token 产生完全相同的行
		require.NoError(t, l.Write(StringPayload("m"), Level("INFO")))
		require.NoError(t, l.Write(StringPayload("m"), LevelInfo))

		lines := readLines(t, path)
		require.Len(t, lines, 2)
		assert.Equal(t, "[2024-01-02 15:04:05] [INFO] [string] m", lines[0])
		assert.Equal(t, lines[0], lines[1])
	})
}

// TestWithClock 测试注入时钟选项
func TestWithClock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	fixed := time.Date(2030, 6, 1, 8, 30, 0, 0, time.Local)

	l, err := New(path, 1<<20, WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)
	require.NoError(t, l.Info("ping", nil))

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "[2030-06-01 08:30:00] [INFO] [string] ping", lines[0])
}

// TestWriteScalarBodies 测试标量载荷的正文渲染
func TestWriteScalarBodies(t *testing.T) {
	tests := []struct {
		name     string
		payload  Payload
		wantBody string
	}{
		{name: "布尔真", payload: BoolPayload(true), wantBody: "true"},
		{name: "布尔假", payload: BoolPayload(false), wantBody: "false"},
		{name: "整数", payload: IntPayload(42), wantBody: "42"},
		{name: "null", payload: NullPayload(), wantBody: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, path := newTestLogger(t, 1<<20)

			require.NoError(t, l.Write(tt.payload, LevelWarning))

			lines := readLines(t, path)
			assert.Equal(t, "[2024-01-02 15:04:05] [WARNING] "+tt.wantBody, lines[0])
		})
	}
}

// TestWriteLineCount 测试 N 次写入恰好产生 N 行
func TestWriteLineCount(t *testing.T) {
	l, path := newTestLogger(t, 1<<20)

	const n = 20
	for i := 0; i < n; i++ {
		require.NoError(t, l.Info(fmt.Sprintf("entry %d", i), nil))
	}

	lines := readLines(t, path)
	assert.Len(t, lines, n)
}

// TestWriteRotation 测试写入触发轮转且新条目落在新文件
func TestWriteRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := New(path, 16)
	require.NoError(t, err)
	l.nowFn = func() time.Time { return fixedNow }

	// 预置一个超过阈值的存量文件
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 64)), 0644))

	require.NoError(t, l.Error("fresh entry", nil))

	// 新条目总是落在轮转后的新文件里
	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "fresh entry")

	// 存量内容完整保留在轮转文件中
	rotated, err := filepath.Glob(path + ".*")
	require.NoError(t, err)
	require.Len(t, rotated, 1)
	data, err := os.ReadFile(rotated[0])
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", 64), string(data))
}
