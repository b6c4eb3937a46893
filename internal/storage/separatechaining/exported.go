package separatechaining

import (
	"fmt"
	"github.com/cbream22/contact/internal/hash"
	"github.com/cbream22/contact/internal/model"
)

// SCBuckets - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// Each bucket holds the head of a single linked list of entries, new entries are appended at the tail.
type SCBuckets struct {
	buckets         []*model.Entry
	lengths         []int64
	numberOfBuckets int64
	records         int64
	hashAlgorithm   *hash.CharSumHashAlgorithm
}

// NewSCBuckets - Returns a pointer to a new instance of the Separate Chaining bucket implementation.
//   - numberOfBuckets is the fixed number of buckets, it has to be at least 1
//
// It returns:
//   - scBuckets which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCBuckets(numberOfBuckets int64) (scBuckets *SCBuckets, err error) {
	if numberOfBuckets < 1 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero), got %d", numberOfBuckets)
		return
	}

	scBuckets = &SCBuckets{
		buckets:         make([]*model.Entry, numberOfBuckets),
		lengths:         make([]int64, numberOfBuckets),
		numberOfBuckets: numberOfBuckets,
		hashAlgorithm:   hash.NewCharSumHashAlgorithm(numberOfBuckets),
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters
func (S *SCBuckets) GetStorageParameters() (params model.StorageParameters) {
	return model.StorageParameters{
		NumberOfBuckets: S.numberOfBuckets,
		Records:         S.records,
	}
}

// GetBucketNo - Returns which bucket number that the given key results in
func (S *SCBuckets) GetBucketNo(key string) (bucketNo int64) {
	return S.hashAlgorithm.HashFunc1(key)
}

// Get - Returns the contact stored under key.
//   - key is the name the contact was set with
//
// It returns:
//   - contact is the matching contact if found
//   - found is false if no entry in the bucket chain matches key
func (S *SCBuckets) Get(key string) (contact model.Contact, found bool) {
	entry := S.lookup(S.GetBucketNo(key), key)
	if entry == nil {
		return
	}

	contact = entry.Value
	found = true

	return
}

// Set - Updates the contact of an existing entry with the same key, or appends a new entry to the end
// of the bucket chain if there is none.
//   - key is the identifier of the entry
//   - contact is the value to store, it replaces any previously stored contact
//
// It returns:
//   - added is true if a new entry was appended and false if an existing entry was updated
func (S *SCBuckets) Set(key string, contact model.Contact) (added bool) {
	bucketNo := S.GetBucketNo(key)
	newEntry := &model.Entry{Key: key, Value: contact}

	current := S.buckets[bucketNo]
	if current == nil {
		S.buckets[bucketNo] = newEntry
		S.lengths[bucketNo]++
		S.records++
		return true
	}

	var prev *model.Entry
	for current != nil {
		if current.Key == key {
			current.Value = contact
			return false
		}
		prev = current
		current = current.Next
	}
	prev.Next = newEntry
	S.lengths[bucketNo]++
	S.records++

	return true
}

// GetBucket - Returns a bucket with its head entry and an iterator over the chain.
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - bucket is a model.Bucket struct
//   - iterator is a ChainIterator positioned at the head of the chain
//   - err is a standard error if bucketNo is outside the table
func (S *SCBuckets) GetBucket(bucketNo int64) (bucket model.Bucket, iterator *ChainIterator, err error) {
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = fmt.Errorf("bucket number %d is outside permitted range [0, %d)", bucketNo, S.numberOfBuckets)
		return
	}

	bucket = model.Bucket{
		BucketNo: bucketNo,
		Head:     S.buckets[bucketNo],
		Length:   S.lengths[bucketNo],
	}
	iterator = NewChainIterator(bucket.Head)

	return
}

// lookup - Walks the chain of bucketNo and returns the entry matching key, or nil if there is none
func (S *SCBuckets) lookup(bucketNo int64, key string) *model.Entry {
	for current := S.buckets[bucketNo]; current != nil; current = current.Next {
		if current.Key == key {
			return current
		}
	}

	return nil
}
