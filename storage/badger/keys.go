package badger

import (
	"encoding/binary"

	"github.com/poiesic/strand/core"
)

// Key prefixes for different data types
const (
	stringRecordPrefix = "strrec"
	stringOrderPrefix  = "strord"
	stringSeqName      = "strrecseq"
)

// makeStringRecordKey generates the primary key for a record by its
// content-derived id.
func makeStringRecordKey(id core.ID) []byte {
	return []byte(stringRecordPrefix + ":" + string(id))
}

// makeOrderKey generates a key for the insertion-order index.
// The sequence number is written in BigEndian order so lexicographic
// iteration yields insertion order.
func makeOrderKey(seq uint64) []byte {
	prefix := []byte(stringOrderPrefix + ":")
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}
