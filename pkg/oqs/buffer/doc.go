// Package buffer provides role-tagged byte buffers for key material,
// ciphertexts, shared secrets, signatures, messages and context strings.
//
// The role is part of the type (Owned[SecretKeyTag] and Owned[PublicKeyTag]
// do not mix) and every buffer is bound to the algorithm it was created for.
// Lengths come from the catalog; a buffer whose length does not match its
// role is never constructed.
//
// Secret keys and shared secrets are zeroed exactly once, by Destroy or by
// the finalizer if Destroy is never called:
//
//	ss, err := k.Decapsulate(sk, ct)
//	if err != nil {
//	    return err
//	}
//	defer ss.Destroy()
//
// Views borrow an owner's storage. Reading a view after its owner has been
// destroyed panics rather than returning wiped bytes.
package buffer
