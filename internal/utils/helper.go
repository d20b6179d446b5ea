package utils

import "strconv"

func StrPtr(s string) *string {
	return &s
}

func Int64Ptr(n int64) *int64 {
	return &n
}

func ParseID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}
