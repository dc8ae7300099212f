package util

import (
	"fmt"
	"io"
	"net/http"
)

// GetSafeContentType 以文件头嗅探真实类型，不信任客户端声明。
// 读取后把读取位置拨回起点，调用方可继续完整读取。
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("文件头读取失败: %w", err)
	}

	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("文件指针重置失败: %w", err)
	}

	return http.DetectContentType(buf[:n]), nil
}
