package contact

import (
	"fmt"
	"github.com/cbream22/contact/internal/conf"
	"github.com/cbream22/contact/internal/model"
	"github.com/cbream22/contact/internal/storage/separatechaining"
	"io"
	"os"
	"strings"
)

// Insert - Maps key to a new contact built from key and number. If key is already present its contact is replaced,
// otherwise a new entry is appended to the end of the key's bucket chain.
//   - key is the contact name, compared case-sensitively
//   - number is the phone number, stored as given
//
// It returns:
//   - added is true if a new entry was created and false if an existing one was updated
func (T *Table) Insert(key, number string) (added bool) {
	return T.storage.Set(key, model.Contact{Name: key, Number: number})
}

// Search - Gets the contact stored under key.
//   - key is the contact name, compared case-sensitively
//
// It returns:
//   - contact is the matching contact if found
//   - found is false if the key has never been inserted, this is not an error
func (T *Table) Search(key string) (contact Contact, found bool) {
	return T.storage.Get(key)
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of a contact
func (T *Table) GetBucketNo(key string) (bucketNo int64) {
	return T.storage.GetBucketNo(key)
}

// Len - Returns the number of entries stored
func (T *Table) Len() int64 {
	return T.storage.GetStorageParameters().Records
}

// Stat - Walks through the entire set of buckets and produce a TableStat struct with information.
//   - includeDistribution set to true will include a slice of length Size with number of entries per bucket, false will set TableStat.BucketDistribution to nil.
func (T *Table) Stat(includeDistribution bool) (tableStat TableStat, err error) {
	var bucket model.Bucket

	if includeDistribution {
		tableStat.BucketDistribution = make([]int64, T.size)
	}

	for i := int64(0); i < T.size; i++ {
		bucket, _, err = T.storage.GetBucket(i)
		if err != nil {
			return
		}

		tableStat.Records += bucket.Length
		if bucket.Length == 0 {
			tableStat.EmptyBuckets++
		} else {
			tableStat.UsedBuckets++
		}
		if bucket.Length > tableStat.LongestChain {
			tableStat.LongestChain = bucket.Length
		}
		if includeDistribution {
			tableStat.BucketDistribution[i] = bucket.Length
		}
	}

	tableStat.LoadFactor = float64(tableStat.Records) / float64(T.size)

	return
}

// Dump - Writes a human-readable rendering of every bucket to w, in bucket order. An empty bucket is written as
// "Index <n>: Empty" and a used bucket as "Index <n>: - <contact> - <contact>" in chain order.
// The format is meant for inspection and may change.
func (T *Table) Dump(w io.Writer) (err error) {
	var sb strings.Builder
	var iter *separatechaining.ChainIterator
	for i := int64(0); i < T.size; i++ {
		sb.Reset()
		_, iter, err = T.storage.GetBucket(i)
		if err != nil {
			return
		}

		fmt.Fprintf(&sb, conf.DumpIndexFormat, i)
		if !iter.HasNext() {
			sb.WriteString(" " + conf.DumpEmptyBucket)
		}
		for iter.HasNext() {
			entry, _ := iter.Next()
			fmt.Fprintf(&sb, " %s %s", conf.DumpEntryPrefix, entry.Value)
		}
		sb.WriteString("\n")

		if _, err = io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("error while writing bucket %d: %w", i, err)
		}
	}

	return
}

// PrintTable - Writes the dump of the table to standard output
func (T *Table) PrintTable() {
	_ = T.Dump(os.Stdout)
}
