package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
	BadGateway          = 502
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrUserNotFound         = errors.New("用户不存在")
	ErrUserUsernameExist    = errors.New("用户名已存在")
	ErrPasswordIncorrect    = errors.New("密码错误")
	ErrFileNotSupported     = errors.New("不支持的文件类型")
	ErrFileTooLarge         = errors.New("文件大小超过限制")
	ErrImageNotFound        = errors.New("图片不存在")
	ErrAccountNotLinked     = errors.New("未绑定 Instagram 账号")
	ErrStyleProfileNotFound = errors.New("风格画像不存在")
	ErrInstagramUpstream    = errors.New("Instagram 服务不可用")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrUserNotFound:         NotFound,
	ErrUserUsernameExist:    BadRequest,
	ErrPasswordIncorrect:    Unauthorized,
	ErrFileNotSupported:     BadRequest,
	ErrFileTooLarge:         BadRequest,
	ErrImageNotFound:        NotFound,
	ErrAccountNotLinked:     NotFound,
	ErrStyleProfileNotFound: NotFound,
	ErrInstagramUpstream:    BadGateway,
	UnExpectedError:         InternalServerError,
}
