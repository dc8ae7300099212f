package util

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// EnhanceImage 对图片做增亮、提饱和与锐化，输出 JPEG。
// 亮度 +10%，饱和度 +20%，与前端预览使用的滤镜参数保持一致。
func EnhanceImage(reader io.Reader) (*bytes.Buffer, error) {
	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("图片解码失败: %w", err)
	}

	img = imaging.AdjustBrightness(img, 10)
	img = imaging.AdjustSaturation(img, 20)
	img = imaging.Sharpen(img, 1.0)

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("图片编码失败: %w", err)
	}

	return &buf, nil
}
