package organizer

import (
	"errors"
	"fmt"
)

// Hard failure kinds. Match them with errors.Is.
var (
	ErrPathNotFound  = errors.New("path not found")
	ErrNotADirectory = errors.New("not a directory")
	ErrIO            = errors.New("i/o failure")
	ErrUserCancelled = errors.New("no folder selected")
	ErrInvalidPath   = errors.New("invalid folder path")
	ErrTaskFailed    = errors.New("task failed")
)

// OpError is a hard failure that aborts a whole operation. Its message is
// meant for direct display to the user.
type OpError struct {
	Kind error  // One of the Err* kinds above
	Path string // Offending path, if any
	Err  error  // Underlying error, if any
}

func (e *OpError) Error() string {
	switch e.Kind {
	case ErrPathNotFound:
		return fmt.Sprintf("路径不存在: %s", e.Path)
	case ErrNotADirectory:
		return fmt.Sprintf("不是目录: %s", e.Path)
	case ErrIO:
		return fmt.Sprintf("创建move文件夹失败: %v", e.Err)
	case ErrUserCancelled:
		return "未选择文件夹"
	case ErrInvalidPath:
		return "文件夹路径无效"
	case ErrTaskFailed:
		return fmt.Sprintf("任务执行失败: %v", e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return fmt.Sprint(e.Kind)
}

// Is reports whether target is the kind of this error.
func (e *OpError) Is(target error) bool {
	return target == e.Kind
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// NotFoundError returns a PathNotFound failure for path.
func NotFoundError(path string) error {
	return &OpError{Kind: ErrPathNotFound, Path: path}
}

// NotDirError returns a NotADirectory failure for path.
func NotDirError(path string) error {
	return &OpError{Kind: ErrNotADirectory, Path: path}
}

// CancelledError returns the failure used when the user picks no folder.
func CancelledError() error {
	return &OpError{Kind: ErrUserCancelled}
}

// InvalidPathError returns the failure used when a picked path is not text.
func InvalidPathError(path string) error {
	return &OpError{Kind: ErrInvalidPath, Path: path}
}

// TaskError wraps a failure of the prompt machinery itself.
func TaskError(err error) error {
	return &OpError{Kind: ErrTaskFailed, Err: err}
}
