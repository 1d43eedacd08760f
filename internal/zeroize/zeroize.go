// Package zeroize holds the module's single memory-wiping routine. It has no
// dependencies so that both pkg/oqs and the providers it links can use it.
package zeroize

import "runtime"

// Bytes overwrites buf with zeros. runtime.KeepAlive keeps the stores from
// being eliminated (golang/go#33325). Copies made by the garbage collector
// or by native code are out of reach; liboqs cleanses its own temporaries
// with OQS_MEM_cleanse.
func Bytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
