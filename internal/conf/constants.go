package conf

// MinTableSize - Smallest number of buckets a table can be created with, the bucket selection is a modulo
// over the table size so zero buckets is not permitted
const MinTableSize int64 = 1

// DumpIndexFormat - Format of the bucket index prefix on each dump line
const DumpIndexFormat string = "Index %d:"

// DumpEmptyBucket - Marker written for a bucket without any entries
const DumpEmptyBucket string = "Empty"

// DumpEntryPrefix - Prefix written before each contact in a bucket chain
const DumpEntryPrefix string = "-"
