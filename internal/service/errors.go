package service

import "errors"

// 哨兵错误：Handler 通过 errors.Is 映射为 HTTP 状态码。
// 其余错误（约束冲突、连接失败等）原样向上传递。
var (
	// ErrTopicNotFound 主题不存在（详情查询、标签集合替换）
	ErrTopicNotFound = errors.New("Topico not found")
	// ErrInvalidInput 请求参数不合法
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal 服务未正确初始化
	ErrInternal = errors.New("internal server error")
)
