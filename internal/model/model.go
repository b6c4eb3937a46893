package model

import "fmt"

// Contact - Represents one contact record, a display name paired with a phone number.
// The number is an opaque string and is never validated or parsed.
type Contact struct {
	Name   string
	Number string
}

// String - Renders the contact as "<name>: <number>"
func (C Contact) String() string {
	return fmt.Sprintf("%s: %s", C.Name, C.Number)
}

// Entry - Represents one node in a bucket chain.
// Key is kept apart from Value so that lookups can compare keys without touching the contact.
type Entry struct {
	Key   string
	Value Contact
	Next  *Entry
}

// Bucket - Represents the chain stored in one slot of the table
type Bucket struct {
	BucketNo int64
	Head     *Entry
	Length   int64
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	NumberOfBuckets int64
	Records         int64
}
