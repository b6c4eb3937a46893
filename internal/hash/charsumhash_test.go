package hash

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

func TestCharSumHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size as given", func(t *testing.T) {
		// Prepare
		h := NewCharSumHashAlgorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(10), tableSize, "correct tableSize value")
	})
}

func TestCharSumHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewCharSumHashAlgorithm(10)

		// Execute
		h.SetTableSize(23)

		// Check
		assert.Equal(t, int64(23), h.GetTableSize(), "correct tableSize value")
		assert.Equal(t, int64(399%23), h.HashFunc1("John"), "new table size is used")
	})
}

func TestCharSumHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates known bucket numbers", func(t *testing.T) {
		// Prepare
		h := NewCharSumHashAlgorithm(10)
		tests := map[string]int64{
			"John":    9, // 399
			"Rebecca": 7, // 677
			"Amy":     5, // 295
			"May":     5, // 295
			"Chris":   5, // 505
			"":        0,
		}

		for key, want := range tests {
			// Execute
			bucketNo := h.HashFunc1(key)

			// Check
			assert.Equal(t, want, bucketNo, fmt.Sprintf("correct bucket number for %q", key))
		}
	})

	t.Run("empty key hashes to zero for any table size", func(t *testing.T) {
		for size := int64(1); size <= 64; size++ {
			h := NewCharSumHashAlgorithm(size)
			assert.Equal(t, int64(0), h.HashFunc1(""), "empty key in bucket 0")
		}
	})

	t.Run("anagrams collide for any table size", func(t *testing.T) {
		for size := int64(1); size <= 256; size++ {
			h := NewCharSumHashAlgorithm(size)
			assert.Equal(t, h.HashFunc1("May"), h.HashFunc1("Amy"), fmt.Sprintf("collision with table size %d", size))
		}
	})

	t.Run("bucket number always within table", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(1))
		runes := []rune("abcXYZ 0123-åäöñ日本語🙂")

		for i := 0; i < 2000; i++ {
			size := rnd.Int63n(1000) + 1
			key := make([]rune, rnd.Intn(20))
			for j := range key {
				key[j] = runes[rnd.Intn(len(runes))]
			}
			h := NewCharSumHashAlgorithm(size)

			// Execute
			bucketNo := h.HashFunc1(string(key))

			// Check
			assert.GreaterOrEqual(t, bucketNo, int64(0), "bucket number not negative")
			assert.Less(t, bucketNo, size, "bucket number below table size")
		}
	})
}

func TestCharSum(t *testing.T) {
	t.Run("sums runes not bytes", func(t *testing.T) {
		assert.Equal(t, int64(0x00e5), CharSum("å"), "two byte character counted once")
		assert.Equal(t, int64(0x65e5+0x672c), CharSum("日本"), "three byte characters counted once each")
	})

	t.Run("invalid utf-8 counts as replacement character", func(t *testing.T) {
		assert.Equal(t, int64(0xfffd), CharSum(string([]byte{0xff})), "invalid byte counted as U+FFFD")
	})
}
