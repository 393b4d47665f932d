package dilithium

import (
	"bufio"
	"crypto"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// katVector mirrors one NIST KAT record: a seed, message, and expected
// signed-message output, in the pqcrystals-Dilithium .rsp format that
// original_source/test.py reads.
type katVector struct {
	seed []byte
	msg  []byte
	sm   []byte
}

func readKATFile(path string) ([]katVector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var vectors []katVector
	var cur katVector
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "seed = "):
			cur.seed, err = hex.DecodeString(strings.TrimPrefix(line, "seed = "))
			if err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "msg = "):
			cur.msg, err = hex.DecodeString(strings.TrimPrefix(line, "msg = "))
			if err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "sm = "):
			cur.sm, err = hex.DecodeString(strings.TrimPrefix(line, "sm = "))
			if err != nil {
				return nil, err
			}
			vectors = append(vectors, cur)
			cur = katVector{}
		}
	}
	return vectors, sc.Err()
}

func TestKnownAnswerVectors(t *testing.T) {
	modes := map[Mode]string{
		Mode2: "testdata/KAT_Dilithium2.rsp",
		Mode3: "testdata/KAT_Dilithium3.rsp",
		Mode5: "testdata/KAT_Dilithium5.rsp",
	}

	for mode, path := range modes {
		mode, path := mode, path
		t.Run(mode.String(), func(t *testing.T) {
			if _, err := os.Stat(filepath.FromSlash(path)); err != nil {
				t.Skipf("no KAT fixture at %s: %v", path, err)
			}

			vectors, err := readKATFile(path)
			require.NoError(t, err)
			require.NotEmpty(t, vectors)

			for i, v := range vectors {
				sk, err := NewPrivateKeyFromSeed(mode, v.seed)
				require.NoErrorf(t, err, "vector %d", i)

				sig, err := sk.Sign(nil, v.msg, crypto.Hash(0))
				require.NoErrorf(t, err, "vector %d", i)

				wantSig := v.sm[:len(v.sm)-len(v.msg)]
				require.Equalf(t, wantSig, sig, "vector %d signature mismatch", i)

				pub := sk.Public().(*PublicKey)
				require.Truef(t, pub.Verify(sig, v.msg), "vector %d failed to verify", i)
			}
		})
	}
}
