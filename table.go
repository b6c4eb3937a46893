package contact

import (
	"fmt"
	"github.com/cbream22/contact/internal/conf"
	"github.com/cbream22/contact/internal/model"
	"github.com/cbream22/contact/internal/storage/separatechaining"
)

// Contact - A contact record pairing a name with a phone number
type Contact = model.Contact

// Storage - Interface for any bucket storage implementation
type Storage interface {
	Get(key string) (contact model.Contact, found bool)
	Set(key string, contact model.Contact) (added bool)
	GetBucket(bucketNo int64) (bucket model.Bucket, iterator *separatechaining.ChainIterator, err error)
	GetBucketNo(key string) (bucketNo int64)
	GetStorageParameters() (params model.StorageParameters)
}

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - UsedBuckets is the number of buckets holding at least one entry
//   - EmptyBuckets is the number of buckets without entries
//   - LongestChain is the length of the longest bucket chain
//   - LoadFactor is Records divided by the number of buckets, it is not bounded since the table never grows
//   - BucketDistribution is the number of entries stored in each bucket, nil unless requested
type TableStat struct {
	Records            int64
	UsedBuckets        int64
	EmptyBuckets       int64
	LongestChain       int64
	LoadFactor         float64
	BucketDistribution []int64
}

// Table - A contact table with a fixed number of buckets using separate chaining for collisions.
// A Table is not safe for concurrent use.
type Table struct {
	storage Storage
	size    int64
}

// NewTable - Returns a new empty table with size buckets. The number of buckets never changes, more entries
// than buckets just give longer chains.
//   - size is the number of buckets, it must be at least 1
//
// It returns:
//   - table is a pointer to a Table struct, nil if err is not nil
//   - err is of type InvalidTableSize if size is below 1, or a standard error
func NewTable(size int64) (table *Table, err error) {
	if size < conf.MinTableSize {
		err = InvalidTableSize{Size: size}
		return
	}

	var s Storage
	s, err = separatechaining.NewSCBuckets(size)
	if err != nil {
		err = fmt.Errorf("error while creating bucket storage: %w", err)
		return
	}

	table = &Table{
		storage: s,
		size:    size,
	}

	return
}

// Size - Returns the fixed number of buckets in the table
func (T *Table) Size() int64 {
	return T.size
}
