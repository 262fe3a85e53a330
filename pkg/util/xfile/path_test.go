package xfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSanitizePath 测试路径格式校验
func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "普通相对路径",
			input: "logs/app.log",
			want:  filepath.Join("logs", "app.log"),
		},
		{
			name:  "绝对路径",
			input: "/var/log/app.log",
			want:  "/var/log/app.log",
		},
		{
			name:  "冗余斜杠被规范化",
			input: "logs//app.log",
			want:  filepath.Join("logs", "app.log"),
		},
		{
			name:  "当前目录段被消除",
			input: "./app.log",
			want:  "app.log",
		},
		{
			name:  "文件名包含连续点号是合法的",
			input: "app..2024.log",
			want:  "app..2024.log",
		},
		{
			name:  "以点点开头的文件名是合法的",
			input: "..archive.log",
			want:  "..archive.log",
		},
		{
			name:    "空路径",
			input:   "",
			wantErr: ErrEmptyPath,
		},
		{
			name:    "包含空字节",
			input:   "app\x00.log",
			wantErr: ErrNullByte,
		},
		{
			name:    "目录路径（尾随斜杠）",
			input:   "logs/",
			wantErr: ErrInvalidPath,
		},
		{
			name:    "目录路径（尾随反斜杠）",
			input:   "logs\\",
			wantErr: ErrInvalidPath,
		},
		{
			name:    "相对路径穿越",
			input:   "../etc/passwd",
			wantErr: ErrPathTraversal,
		},
		{
			name:    "嵌套路径穿越",
			input:   "logs/../../etc/passwd",
			wantErr: ErrPathTraversal,
		},
		{
			name:    "Windows 风格路径穿越",
			input:   "..\\windows\\system32",
			wantErr: ErrPathTraversal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizePath(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestHasDotDotSegment 测试路径段精确匹配
func TestHasDotDotSegment(t *testing.T) {
	assert.True(t, hasDotDotSegment(".."))
	assert.True(t, hasDotDotSegment("a/../b"))
	assert.True(t, hasDotDotSegment("a\\..\\b"))
	assert.False(t, hasDotDotSegment("a..b"))
	assert.False(t, hasDotDotSegment("..config"))
	assert.False(t, hasDotDotSegment(""))
}
