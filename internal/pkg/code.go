package pkg

import (
	"crypto/rand"
	"math/big"
)

const verifyCodeLen = 6

// NewVerifyCode 生成 6 位数字验证码
func NewVerifyCode() (string, error) {
	buf := make([]byte, verifyCodeLen)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		buf[i] = '0' + byte(n.Int64())
	}
	return string(buf), nil
}
