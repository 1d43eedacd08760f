package catalog

// Identifiers are append-only: new algorithms get new values at the end of
// their family block, existing values and names never change.

// KEM identifiers.
const (
	BIKEL1 ID = iota + kemBase
	BIKEL3
	BIKEL5
	ClassicMcEliece348864
	ClassicMcEliece348864f
	ClassicMcEliece460896
	ClassicMcEliece460896f
	ClassicMcEliece6688128
	ClassicMcEliece6688128f
	ClassicMcEliece6960119
	ClassicMcEliece6960119f
	ClassicMcEliece8192128
	ClassicMcEliece8192128f
	HQC128
	HQC192
	HQC256
	Kyber512
	Kyber768
	Kyber1024
	MLKEM512
	MLKEM768
	MLKEM1024
	Sntrup761
	FrodoKEM640AES
	FrodoKEM640SHAKE
	FrodoKEM976AES
	FrodoKEM976SHAKE
	FrodoKEM1344AES
	FrodoKEM1344SHAKE
)

// Signature identifiers.
const (
	Dilithium2 ID = iota + sigBase
	Dilithium3
	Dilithium5
	MLDSA44
	MLDSA65
	MLDSA87
	Falcon512
	Falcon1024
	FalconPadded512
	FalconPadded1024
	SPHINCSSHA2128fSimple
	SPHINCSSHA2128sSimple
	SPHINCSSHA2192fSimple
	SPHINCSSHA2192sSimple
	SPHINCSSHA2256fSimple
	SPHINCSSHA2256sSimple
	SPHINCSSHAKE128fSimple
	SPHINCSSHAKE128sSimple
	SPHINCSSHAKE192fSimple
	SPHINCSSHAKE192sSimple
	SPHINCSSHAKE256fSimple
	SPHINCSSHAKE256sSimple
)

// Lengths match the liboqs 0.12 published values.
var kemTable = [...]KEMDescriptor{
	{ID: BIKEL1, Name: "BIKE-L1", ClaimedNISTLevel: 1, IndCCA: false, PublicKeyLen: 1541, SecretKeyLen: 5223, CiphertextLen: 1573, SharedSecretLen: 32},
	{ID: BIKEL3, Name: "BIKE-L3", ClaimedNISTLevel: 3, IndCCA: false, PublicKeyLen: 3083, SecretKeyLen: 10105, CiphertextLen: 3115, SharedSecretLen: 32},
	{ID: BIKEL5, Name: "BIKE-L5", ClaimedNISTLevel: 5, IndCCA: false, PublicKeyLen: 5122, SecretKeyLen: 16494, CiphertextLen: 5154, SharedSecretLen: 32},

	{ID: ClassicMcEliece348864, Name: "Classic-McEliece-348864", ClaimedNISTLevel: 1, IndCCA: true, PublicKeyLen: 261120, SecretKeyLen: 6492, CiphertextLen: 96, SharedSecretLen: 32},
	{ID: ClassicMcEliece348864f, Name: "Classic-McEliece-348864f", ClaimedNISTLevel: 1, IndCCA: true, PublicKeyLen: 261120, SecretKeyLen: 6492, CiphertextLen: 96, SharedSecretLen: 32},
	{ID: ClassicMcEliece460896, Name: "Classic-McEliece-460896", ClaimedNISTLevel: 3, IndCCA: true, PublicKeyLen: 524160, SecretKeyLen: 13608, CiphertextLen: 156, SharedSecretLen: 32},
	{ID: ClassicMcEliece460896f, Name: "Classic-McEliece-460896f", ClaimedNISTLevel: 3, IndCCA: true, PublicKeyLen: 524160, SecretKeyLen: 13608, CiphertextLen: 156, SharedSecretLen: 32},
	{ID: ClassicMcEliece6688128, Name: "Classic-McEliece-6688128", ClaimedNISTLevel: 5, IndCCA: true, PublicKeyLen: 1044992, SecretKeyLen: 13932, CiphertextLen: 208, SharedSecretLen: 32},
	{ID: ClassicMcEliece6688128f, Name: "Classic-McEliece-6688128f", ClaimedNISTLevel: 5, IndCCA: true, PublicKeyLen: 1044992, SecretKeyLen: 13932, CiphertextLen: 208, SharedSecretLen: 32},
	{ID: ClassicMcEliece6960119, Name: "Classic-McEliece-6960119", ClaimedNISTLevel: 5, IndCCA: true, PublicKeyLen: 1047319, SecretKeyLen: 13948, CiphertextLen: 194, SharedSecretLen: 32},
	{ID: ClassicMcEliece6960119f, Name: "Classic-McEliece-6960119f", ClaimedNISTLevel: 5, IndCCA: true, PublicKeyLen: 1047319, SecretKeyLen: 13948, CiphertextLen: 194, SharedSecretLen: 32},
	{ID: ClassicMcEliece8192128, Name: "Classic-McEliece-8192128", ClaimedNISTLevel: 5, IndCCA: true, PublicKeyLen: 1357824, SecretKeyLen: 14120, CiphertextLen: 208, SharedSecretLen: 32},
	{ID: ClassicMcEliece8192128f, Name: "Classic-McEliece-8192128f", ClaimedNISTLevel: 5, IndCCA: true, PublicKeyLen: 1357824, SecretKeyLen: 14120, CiphertextLen: 208, SharedSecretLen: 32},

	{ID: HQC128, Name: "HQC-128", ClaimedNISTLevel: 1, IndCCA: true, PublicKeyLen: 2249, SecretKeyLen: 2305, CiphertextLen: 4433, SharedSecretLen: 64},
	{ID: HQC192, Name: "HQC-192", ClaimedNISTLevel: 3, IndCCA: true, PublicKeyLen: 4522, SecretKeyLen: 4586, CiphertextLen: 8978, SharedSecretLen: 64},
	{ID: HQC256, Name: "HQC-256", ClaimedNISTLevel: 5, IndCCA: true, PublicKeyLen: 7245, SecretKeyLen: 7317, CiphertextLen: 14421, SharedSecretLen: 64},

	{ID: Kyber512, Name: "Kyber512", ClaimedNISTLevel: 1, IndCCA: true, PublicKeyLen: 800, SecretKeyLen: 1632, CiphertextLen: 768, SharedSecretLen: 32},
	{ID: Kyber768, Name: "Kyber768", ClaimedNISTLevel: 3, IndCCA: true, PublicKeyLen: 1184, SecretKeyLen: 2400, CiphertextLen: 1088, SharedSecretLen: 32},
	{ID: Kyber1024, Name: "Kyber1024", ClaimedNISTLevel: 5, IndCCA: true, PublicKeyLen: 1568, SecretKeyLen: 3168, CiphertextLen: 1568, SharedSecretLen: 32},

	{ID: MLKEM512, Name: "ML-KEM-512", ClaimedNISTLevel: 1, IndCCA: true, PublicKeyLen: 800, SecretKeyLen: 1632, CiphertextLen: 768, SharedSecretLen: 32},
	{ID: MLKEM768, Name: "ML-KEM-768", ClaimedNISTLevel: 3, IndCCA: true, PublicKeyLen: 1184, SecretKeyLen: 2400, CiphertextLen: 1088, SharedSecretLen: 32},
	{ID: MLKEM1024, Name: "ML-KEM-1024", ClaimedNISTLevel: 5, IndCCA: true, PublicKeyLen: 1568, SecretKeyLen: 3168, CiphertextLen: 1568, SharedSecretLen: 32},

	{ID: Sntrup761, Name: "sntrup761", ClaimedNISTLevel: 2, IndCCA: true, PublicKeyLen: 1158, SecretKeyLen: 1763, CiphertextLen: 1039, SharedSecretLen: 32},

	{ID: FrodoKEM640AES, Name: "FrodoKEM-640-AES", ClaimedNISTLevel: 1, IndCCA: true, PublicKeyLen: 9616, SecretKeyLen: 19888, CiphertextLen: 9720, SharedSecretLen: 16},
	{ID: FrodoKEM640SHAKE, Name: "FrodoKEM-640-SHAKE", ClaimedNISTLevel: 1, IndCCA: true, PublicKeyLen: 9616, SecretKeyLen: 19888, CiphertextLen: 9720, SharedSecretLen: 16},
	{ID: FrodoKEM976AES, Name: "FrodoKEM-976-AES", ClaimedNISTLevel: 3, IndCCA: true, PublicKeyLen: 15632, SecretKeyLen: 31296, CiphertextLen: 15744, SharedSecretLen: 24},
	{ID: FrodoKEM976SHAKE, Name: "FrodoKEM-976-SHAKE", ClaimedNISTLevel: 3, IndCCA: true, PublicKeyLen: 15632, SecretKeyLen: 31296, CiphertextLen: 15744, SharedSecretLen: 24},
	{ID: FrodoKEM1344AES, Name: "FrodoKEM-1344-AES", ClaimedNISTLevel: 5, IndCCA: true, PublicKeyLen: 21520, SecretKeyLen: 43088, CiphertextLen: 21632, SharedSecretLen: 32},
	{ID: FrodoKEM1344SHAKE, Name: "FrodoKEM-1344-SHAKE", ClaimedNISTLevel: 5, IndCCA: true, PublicKeyLen: 21520, SecretKeyLen: 43088, CiphertextLen: 21632, SharedSecretLen: 32},
}

var sigTable = [...]SigDescriptor{
	{ID: Dilithium2, Name: "Dilithium2", ClaimedNISTLevel: 2, EUFCMA: true, PublicKeyLen: 1312, SecretKeyLen: 2528, MaxSignatureLen: 2420},
	{ID: Dilithium3, Name: "Dilithium3", ClaimedNISTLevel: 3, EUFCMA: true, PublicKeyLen: 1952, SecretKeyLen: 4000, MaxSignatureLen: 3293},
	{ID: Dilithium5, Name: "Dilithium5", ClaimedNISTLevel: 5, EUFCMA: true, PublicKeyLen: 2592, SecretKeyLen: 4864, MaxSignatureLen: 4595},

	{ID: MLDSA44, Name: "ML-DSA-44", ClaimedNISTLevel: 2, EUFCMA: true, PublicKeyLen: 1312, SecretKeyLen: 2560, MaxSignatureLen: 2420, SupportsContext: true},
	{ID: MLDSA65, Name: "ML-DSA-65", ClaimedNISTLevel: 3, EUFCMA: true, PublicKeyLen: 1952, SecretKeyLen: 4032, MaxSignatureLen: 3309, SupportsContext: true},
	{ID: MLDSA87, Name: "ML-DSA-87", ClaimedNISTLevel: 5, EUFCMA: true, PublicKeyLen: 2592, SecretKeyLen: 4896, MaxSignatureLen: 4627, SupportsContext: true},

	{ID: Falcon512, Name: "Falcon-512", ClaimedNISTLevel: 1, EUFCMA: true, PublicKeyLen: 897, SecretKeyLen: 1281, MaxSignatureLen: 752},
	{ID: Falcon1024, Name: "Falcon-1024", ClaimedNISTLevel: 5, EUFCMA: true, PublicKeyLen: 1793, SecretKeyLen: 2305, MaxSignatureLen: 1462},
	{ID: FalconPadded512, Name: "Falcon-padded-512", ClaimedNISTLevel: 1, EUFCMA: true, PublicKeyLen: 897, SecretKeyLen: 1281, MaxSignatureLen: 666},
	{ID: FalconPadded1024, Name: "Falcon-padded-1024", ClaimedNISTLevel: 5, EUFCMA: true, PublicKeyLen: 1793, SecretKeyLen: 2305, MaxSignatureLen: 1280},

	{ID: SPHINCSSHA2128fSimple, Name: "SPHINCS+-SHA2-128f-simple", ClaimedNISTLevel: 1, EUFCMA: true, PublicKeyLen: 32, SecretKeyLen: 64, MaxSignatureLen: 17088},
	{ID: SPHINCSSHA2128sSimple, Name: "SPHINCS+-SHA2-128s-simple", ClaimedNISTLevel: 1, EUFCMA: true, PublicKeyLen: 32, SecretKeyLen: 64, MaxSignatureLen: 7856},
	{ID: SPHINCSSHA2192fSimple, Name: "SPHINCS+-SHA2-192f-simple", ClaimedNISTLevel: 3, EUFCMA: true, PublicKeyLen: 48, SecretKeyLen: 96, MaxSignatureLen: 35664},
	{ID: SPHINCSSHA2192sSimple, Name: "SPHINCS+-SHA2-192s-simple", ClaimedNISTLevel: 3, EUFCMA: true, PublicKeyLen: 48, SecretKeyLen: 96, MaxSignatureLen: 16224},
	{ID: SPHINCSSHA2256fSimple, Name: "SPHINCS+-SHA2-256f-simple", ClaimedNISTLevel: 5, EUFCMA: true, PublicKeyLen: 64, SecretKeyLen: 128, MaxSignatureLen: 49856},
	{ID: SPHINCSSHA2256sSimple, Name: "SPHINCS+-SHA2-256s-simple", ClaimedNISTLevel: 5, EUFCMA: true, PublicKeyLen: 64, SecretKeyLen: 128, MaxSignatureLen: 29792},
	{ID: SPHINCSSHAKE128fSimple, Name: "SPHINCS+-SHAKE-128f-simple", ClaimedNISTLevel: 1, EUFCMA: true, PublicKeyLen: 32, SecretKeyLen: 64, MaxSignatureLen: 17088},
	{ID: SPHINCSSHAKE128sSimple, Name: "SPHINCS+-SHAKE-128s-simple", ClaimedNISTLevel: 1, EUFCMA: true, PublicKeyLen: 32, SecretKeyLen: 64, MaxSignatureLen: 7856},
	{ID: SPHINCSSHAKE192fSimple, Name: "SPHINCS+-SHAKE-192f-simple", ClaimedNISTLevel: 3, EUFCMA: true, PublicKeyLen: 48, SecretKeyLen: 96, MaxSignatureLen: 35664},
	{ID: SPHINCSSHAKE192sSimple, Name: "SPHINCS+-SHAKE-192s-simple", ClaimedNISTLevel: 3, EUFCMA: true, PublicKeyLen: 48, SecretKeyLen: 96, MaxSignatureLen: 16224},
	{ID: SPHINCSSHAKE256fSimple, Name: "SPHINCS+-SHAKE-256f-simple", ClaimedNISTLevel: 5, EUFCMA: true, PublicKeyLen: 64, SecretKeyLen: 128, MaxSignatureLen: 49856},
	{ID: SPHINCSSHAKE256sSimple, Name: "SPHINCS+-SHAKE-256s-simple", ClaimedNISTLevel: 5, EUFCMA: true, PublicKeyLen: 64, SecretKeyLen: 128, MaxSignatureLen: 29792},
}
