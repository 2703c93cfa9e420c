// Package crypto provides the hashing and key primitives behind NEO script hashes and addresses.
package crypto

import (
	"crypto/sha256"

	"github.com/decred/dcrd/crypto/ripemd160"
)

// ScriptHashSize is the size of a NEO script hash in bytes.
const ScriptHashSize = 20

// Opcodes and syscall of the standard single-signature verification script.
const (
	opPushData1 = 0x0c
	opSysCall   = 0x41
)

// checkSigSyscall is the little-endian interop id of System.Crypto.CheckSig.
var checkSigSyscall = [4]byte{0x56, 0xe7, 0xb3, 0x27}

// CalcScriptHash computes RIPEMD160(SHA256(script)).
// The result is in wire order; its text form is the byte reversal.
func CalcScriptHash(script []byte) [ScriptHashSize]byte {
	sha256Hash := sha256.Sum256(script)

	ripemd160Hasher := ripemd160.New()
	ripemd160Hasher.Write(sha256Hash[:])
	ripemd160Hash := ripemd160Hasher.Sum(nil)

	var result [ScriptHashSize]byte
	copy(result[:], ripemd160Hash)
	return result
}

// VerificationScript builds the single-signature verification script for a
// compressed public key: PUSHDATA1 <key> SYSCALL CheckSig.
func VerificationScript(publicKey []byte) []byte {
	script := make([]byte, 0, 2+len(publicKey)+1+len(checkSigSyscall))
	script = append(script, opPushData1, byte(len(publicKey)))
	script = append(script, publicKey...)
	script = append(script, opSysCall)
	script = append(script, checkSigSyscall[:]...)
	return script
}

// IsZeroScriptHash returns true if the script hash is all zeros.
func IsZeroScriptHash(h [ScriptHashSize]byte) bool {
	for _, b := range h {
		if b != 0 {
			return false
		}
	}
	return true
}
