package hash

// CharSumHashAlgorithm - The bucket selection algorithm sums the code point of every character in the key
// and applies bucket = sum % tableSize.
// Keys sharing the same multiset of characters (anagrams such as "May" and "Amy") always end up in the same
// bucket, collisions are expected and resolved by chaining.
type CharSumHashAlgorithm struct {
	tableSize int64
}

// NewCharSumHashAlgorithm - Returns a pointer to a new CharSumHashAlgorithm instance
//   - tableSize is the number of buckets to distribute over, it must be at least 1
func NewCharSumHashAlgorithm(tableSize int64) *CharSumHashAlgorithm {
	ha := &CharSumHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// Unlike power of two based algorithms the table size is used as is.
//   - tableSize is the number of buckets the table will address
func (C *CharSumHashAlgorithm) SetTableSize(tableSize int64) {
	C.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1.
// Characters are counted as runes, so a multibyte character adds its code point once.
// The empty key always returns 0.
func (C *CharSumHashAlgorithm) HashFunc1(key string) int64 {
	return CharSum(key) % C.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (C *CharSumHashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}

// CharSum - Returns the sum of the code points of all characters in key
func CharSum(key string) (sum int64) {
	for _, r := range key {
		sum += int64(r)
	}

	return
}
