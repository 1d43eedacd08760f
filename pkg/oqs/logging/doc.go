// Package logging is the slog facade used by oqs handles.
//
// A Library carries one Logger. Each KEM or signature handle scopes it with
// ForHandle, so every record names the family, the algorithm and the
// provider:
//
//	level=DEBUG msg="kem opened" family=kem alg=ML-KEM-768 backend=circl
//	level=WARN msg="native call failed" family=kem alg=HQC-128 backend=liboqs op=kem.Encapsulate status=OQS_EXTERNAL_LIB_ERROR_OPENSSL
//
// Buffers implement slog.LogValuer. Secret roles log their contents as
// Placeholder:
//
//	logger.Info(ctx, "key loaded", "sk", sk)
//	// sk.role="secret key" sk.alg=ML-KEM-768 sk.len=2400 sk.bytes=[redacted]
package logging
