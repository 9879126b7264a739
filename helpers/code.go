package helpers

import (
	"math/rand"
	"time"
)

const letterBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomCode(n int) string {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[src.Intn(len(letterBytes))]
	}
	return string(b)
}

func GenerateUserCode(role string) string {
	prefix := "p"
	switch role {
	case "admin":
		prefix = "a"
	case "subadmin":
		prefix = "s"
	}
	return prefix + randomCode(6)
}
