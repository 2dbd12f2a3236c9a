package embedded

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

// reset 恢复未初始化状态，避免影响其他测试
func reset(t *testing.T) {
	t.Helper()
	initialized = false
	dataFS = nil
	t.Cleanup(func() {
		initialized = false
		dataFS = nil
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset(t)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestNotInitialized 测试未初始化时的各个入口
func TestNotInitialized(t *testing.T) {
	reset(t)

	if _, err := Open(DefaultConfigPath); !errors.Is(err, errNotInitialized) {
		t.Errorf("Open() error = %v, want errNotInitialized", err)
	}
	if _, err := ReadFile(DefaultConfigPath); !errors.Is(err, errNotInitialized) {
		t.Errorf("ReadFile() error = %v, want errNotInitialized", err)
	}
	if Exists(DefaultConfigPath) {
		t.Error("Expected Exists() to return false before Init()")
	}
}

// TestReadFile 测试路径标准化与前缀检查
func TestReadFile(t *testing.T) {
	reset(t)
	Init(fstest.MapFS{
		"data/field.yaml": &fstest.MapFile{Data: []byte("particles:\n  count: 10\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/field.yaml", false},
		{"带 ./ 前缀", "./data/field.yaml", false},
		{"未知前缀", "assets/field.yaml", true},
		{"文件不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Error("ReadFile() returned empty data")
			}
		})
	}

	if _, err := ReadFile("data/missing.yaml"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want fs.ErrNotExist", err)
	}
}

// TestExistsAndStat 测试存在性检查与文件信息
func TestExistsAndStat(t *testing.T) {
	reset(t)
	Init(fstest.MapFS{
		"data/field.yaml": &fstest.MapFile{Data: []byte("abc")},
	})

	if !Exists("data/field.yaml") {
		t.Error("Exists(data/field.yaml) = false")
	}
	if Exists("data/other.yaml") {
		t.Error("Exists(data/other.yaml) = true")
	}

	info, err := Stat("data/field.yaml")
	if err != nil {
		t.Fatalf("Stat() error: %v", err)
	}
	if info.Size() != 3 {
		t.Errorf("Size() = %d, want 3", info.Size())
	}
}
