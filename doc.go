// Package srtpcrypto provides the cipher layer used to protect real-time
// transport streams: a common cipher contract, immutable per-variant
// descriptors carrying built-in known-answer vectors, and a self-test driver.
//
// Implementations live in subpackages: icm provides AES integer counter mode
// (the SRTP keystream construction from RFC 3711 section 4.1.1) and
// nullcipher provides the identity transform for streams deliberately left
// unprotected.
//
// A cipher context is bound to a single crypto stream and is not safe for
// concurrent use; the packet-processing path that owns the stream must
// serialize access to it.
package srtpcrypto
