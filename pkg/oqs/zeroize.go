package oqs

import "github.com/hsiuhsiu/oqs-safe-go/internal/zeroize"

// ZeroizeBytes overwrites buf with zeros in a way the compiler cannot elide.
// Use it on copies of secret material taken with CloneBytes.
func ZeroizeBytes(buf []byte) {
	zeroize.Bytes(buf)
}
