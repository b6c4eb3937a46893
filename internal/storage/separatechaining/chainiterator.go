package separatechaining

import (
	"github.com/cbream22/contact/internal/model"
)

// ChainIterator - Is used to iterate over the entries of one bucket chain one by one, in chain order.
type ChainIterator struct {
	current *model.Entry
}

// NewChainIterator - Returns a pointer to a new ChainIterator starting at head
func NewChainIterator(head *model.Entry) *ChainIterator {
	return &ChainIterator{current: head}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (C *ChainIterator) HasNext() bool {
	return C.current != nil
}

// Next - Returns the next entry in the chain.
// It returns:
//   - entry is the next entry
//   - ok is false if the chain was already exhausted, entry is then a zero value
func (C *ChainIterator) Next() (entry model.Entry, ok bool) {
	if C.current == nil {
		return
	}

	entry = *C.current
	ok = true
	C.current = C.current.Next

	return
}
