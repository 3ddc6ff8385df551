/*
Package checksum computes content hashes of a Drawing's canonical
serialized form, letting a caller verify the bit-identical determinism the
fitter promises (given identical inputs and tolerances, outputs must be
bit-identical within a single implementation) across runs without diffing
DXF text byte-for-byte.

Modeled on the dispatch-by-crypto.Hash pattern the teacher uses for
sequence hashing: a generic function accepting any registered
crypto.Hash, plus a dedicated BLAKE3 path kept separate because BLAKE3
does not implement the standard hash.Hash registry the same way the
stdlib and golang.org/x/crypto implementations do.
*/
package checksum

import (
	"bytes"
	"crypto"
	_ "crypto/md5"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"

	_ "golang.org/x/crypto/blake2b"
	_ "golang.org/x/crypto/blake2s"
	_ "golang.org/x/crypto/ripemd160"
	_ "golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"

	"github.com/TimothyStiles/arcweld/dxfio"
	"github.com/TimothyStiles/arcweld/entity"
)

// Where each hash function comes from.
// MD5            // import crypto/md5
// SHA256         // import crypto/sha256
// SHA512         // import crypto/sha512
// SHA3_256       // import golang.org/x/crypto/sha3
// RIPEMD160      // import golang.org/x/crypto/ripemd160
// BLAKE2b_256    // import golang.org/x/crypto/blake2b
// BLAKE2s_256    // import golang.org/x/crypto/blake2s

// Sum hashes the canonical serialized form of d with the given registered
// crypto.Hash and returns its hex digest.
func Sum(d entity.Drawing, h crypto.Hash) (string, error) {
	if !h.Available() {
		return "", errors.New("checksum: hash unavailable")
	}

	canonical, err := canonicalize(d)
	if err != nil {
		return "", err
	}

	digest := h.New()
	digest.Write(canonical)
	return hex.EncodeToString(digest.Sum(nil)), nil
}

// Blake3 hashes the canonical serialized form of d with BLAKE3-256.
// BLAKE3's implementation doesn't use the standard hash.Hash registry, so
// it can't be dispatched through Sum.
func Blake3(d entity.Drawing) (string, error) {
	canonical, err := canonicalize(d)
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalize(d entity.Drawing) ([]byte, error) {
	var buf bytes.Buffer
	if err := dxfio.Write(&buf, d); err != nil {
		return nil, fmt.Errorf("checksum: serializing drawing: %w", err)
	}
	return buf.Bytes(), nil
}
