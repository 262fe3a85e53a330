package xflog

import (
	"errors"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrorHandler 测试运行时错误桥接
func TestErrorHandler(t *testing.T) {
	l, path := newTestLogger(t, 1<<20)

	proceed := l.ErrorHandler(8, "undefined variable", "a.php", 10)

	// 恒为 false：继续执行宿主默认的错误处理
	assert.False(t, proceed)

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[ERROR]")
	assert.Contains(t, lines[0], "PHP Error [Level 8]: undefined variable in a.php on line 10")
}

// TestExceptionHandlerDirect 测试直接上报异常值
func TestExceptionHandlerDirect(t *testing.T) {
	l, path := newTestLogger(t, 1<<20)

	l.ExceptionHandler(errors.New("boom"))

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[ERROR]")
	assert.Contains(t, lines[0], "Uncaught Exception: boom in ")
	// 直接调用时来源是调用点所在文件
	assert.Contains(t, lines[0], "handlers_test.go")
}

// TestExceptionHandlerFromRecover 测试 defer-recover 桥接定位 panic 发生点
func TestExceptionHandlerFromRecover(t *testing.T) {
	l, path := newTestLogger(t, 1<<20)

	func() {
		defer func() {
			if r := recover(); r != nil {
				l.ExceptionHandler(r)
			}
		}()
		panic("exploded")
	}()

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Uncaught Exception: exploded in ")
	// 来源是 panic 发生点（本测试文件），且行号非零
	assert.Contains(t, lines[0], "handlers_test.go")
	assert.NotContains(t, lines[0], "on line 0")
}

// TestExceptionMessage 测试异常值的消息提取
func TestExceptionMessage(t *testing.T) {
	assert.Equal(t, "boom", exceptionMessage(errors.New("boom")))
	assert.Equal(t, "raw panic", exceptionMessage("raw panic"))
	assert.Equal(t, "42", exceptionMessage(42))
}

// TestRegisterHandlers 测试标准库 log 的挂接与还原
func TestRegisterHandlers(t *testing.T) {
	l, path := newTestLogger(t, 1<<20)

	prevWriter := log.Writer()
	prevFlags := log.Flags()

	restore := l.RegisterHandlers()
	log.Print("bridged message")
	restore()

	// 挂接期间的输出以 ERROR 级别落盘
	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[ERROR] bridged message")

	// restore 还原先前的输出目标与 flags
	assert.Equal(t, prevWriter, log.Writer())
	assert.Equal(t, prevFlags, log.Flags())

	// 还原后标准库 log 不再写入引擎
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	defer devnull.Close()
	log.SetOutput(devnull)
	defer log.SetOutput(prevWriter)

	log.Print("after restore")
	assert.Len(t, readLines(t, path), 1)
}

// TestStdlogBridgeWrite 测试桥接 writer 按行落盘并回报完整写入长度
func TestStdlogBridgeWrite(t *testing.T) {
	l, path := newTestLogger(t, 1<<20)
	b := stdlogBridge{logger: l}

	n, err := b.Write([]byte(fmt.Sprintln("one line")))
	require.NoError(t, err)
	assert.Equal(t, len("one line")+1, n)

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "one line")
}
