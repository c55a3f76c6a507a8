package model

// String 返回 s 的指针，便于构造可空字段。
func String(s string) *string {
	return &s
}

// Int64 返回 v 的指针。
func Int64(v int64) *int64 {
	return &v
}

// Deref 返回指针指向的字符串，nil 时返回空串。
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
