package xrotate_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/omeyang/logkit/pkg/log/xrotate"
)

// ExampleNewTimestamp 演示时间戳轮转器的基本用法
func ExampleNewTimestamp() {
	path := filepath.Join(os.TempDir(), "xrotate-example", "app.log")
	defer os.RemoveAll(filepath.Dir(path))

	r, err := xrotate.NewTimestamp(path, 1<<20)
	if err != nil {
		fmt.Println("create:", err)
		return
	}
	defer r.Close()

	if _, err := r.Write([]byte("hello\n")); err != nil {
		fmt.Println("write:", err)
		return
	}
	fmt.Println("written")
	// Output: written
}
