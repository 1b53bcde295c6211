package abit

import "golang.org/x/crypto/sha3"

// Keccak returns the keccak-256 hash of d.
func Keccak(d []byte) []byte {
	k := sha3.NewLegacyKeccak256()
	k.Write(d)
	return k.Sum(nil)
}

func Keccak32(d []byte) [32]byte {
	return *(*[32]byte)(Keccak(d))
}

// SigHash hashes a canonical signature, eg
// Transfer(address,address,uint256). For events this
// is the first topic.
func SigHash(sig string) [32]byte {
	return Keccak32([]byte(sig))
}

// Selector returns the 4 byte function selector for a
// canonical signature.
func Selector(sig string) [4]byte {
	h := SigHash(sig)
	return [4]byte(h[:4])
}
