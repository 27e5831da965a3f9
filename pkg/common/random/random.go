package random

import (
	"crypto/rand"
	"math/big"
)

// AlphanumericString 从 [A-Za-z0-9] 均匀采样生成定长随机串，
// 使用 crypto/rand，适合做不可预测的凭据。
func AlphanumericString(length int) (string, error) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	result := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		result[i] = alphabet[n.Int64()]
	}
	return string(result), nil
}
