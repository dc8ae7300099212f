package consts

const (
	MimePrefixImage = "image"

	// MaxUploadSize 上传图片大小上限 5MB
	MaxUploadSize = 5 * 1024 * 1024
)

const (
	MediaTypeImage = "IMAGE"
	MediaTypeVideo = "VIDEO"
)
