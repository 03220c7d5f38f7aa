package utils

import "github.com/google/uuid"

// ShortID sinh mã xếp hàng 8 ký tự (prefix của UUID). Đủ duy nhất trong
// phạm vi một sổ, không cần duy nhất toàn cục.
func ShortID() string {
	return uuid.NewString()[:8]
}
