package model

type HashAlgorithm int

const (
	UnknownHashAlgorithm HashAlgorithm = iota
	MD5
	SHA1
	SHA256
	SHA384
	SHA512
	SHA3_256
	SHA3_384
	SHA3_512
	BLAKE2b_256
	BLAKE2b_384
	BLAKE2b_512
	BLAKE3
)

func (a HashAlgorithm) IsValid() bool {
	return a > UnknownHashAlgorithm && a <= BLAKE3
}
