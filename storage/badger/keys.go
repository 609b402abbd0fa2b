package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/docvault/core"
)

// Key prefixes for different data types
const (
	documentPrefix         = "docrec"
	documentFilenamePrefix = "docfn"
	documentDeptPrefix     = "docdep"
	documentIDSeq          = "docrecseq"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeFilenameKey generates a key for the filename index.
// Filename collisions overwrite this entry silently; the most recently
// stored document owns the name.
func makeFilenameKey(filename string) []byte {
	return []byte(documentFilenamePrefix + ":" + filename)
}

// makeDeptKey generates a composite key for the department index.
// Format: prefix:department:id
func makeDeptKey(department string, id core.ID) []byte {
	prefix := documentDeptPrefix + ":" + department + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic iteration yields ascending IDs
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialDeptKey generates the iteration prefix for one department.
func makePartialDeptKey(department string) []byte {
	return []byte(documentDeptPrefix + ":" + department + ":")
}
