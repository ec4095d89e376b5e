package core

import (
	"time"

	mus "github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for stored records. The record shape is small and stable,
// so these are maintained by hand rather than generated.

var (
	IDMUS           = idMUS{}
	PropertiesMUS   = propertiesMUS{}
	StringRecordMUS = stringRecordMUS{}
)

var (
	_ mus.Serializer[ID]           = IDMUS
	_ mus.Serializer[Properties]   = PropertiesMUS
	_ mus.Serializer[StringRecord] = StringRecordMUS
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return ord.String.Marshal(string(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	s, n, err := ord.String.Unmarshal(bs)
	return ID(s), n, err
}

func (idMUS) Size(id ID) int {
	return ord.String.Size(string(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return ord.String.Skip(bs)
}

type propertiesMUS struct{}

func (propertiesMUS) Marshal(p Properties, bs []byte) (n int) {
	n = varint.Int.Marshal(p.Length, bs)
	n += ord.Bool.Marshal(p.IsPalindrome, bs[n:])
	n += varint.Int.Marshal(p.UniqueCharacters, bs[n:])
	n += varint.Int.Marshal(p.WordCount, bs[n:])
	n += IDMUS.Marshal(p.ContentHash, bs[n:])
	n += varint.Int.Marshal(len(p.CharacterFrequency), bs[n:])
	for ch, count := range p.CharacterFrequency {
		n += ord.String.Marshal(ch, bs[n:])
		n += varint.Int.Marshal(count, bs[n:])
	}
	return n
}

func (propertiesMUS) Unmarshal(bs []byte) (p Properties, n int, err error) {
	var n1 int
	if p.Length, n, err = varint.Int.Unmarshal(bs); err != nil {
		return
	}
	if p.IsPalindrome, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.UniqueCharacters, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.WordCount, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.ContentHash, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	var entries int
	if entries, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	p.CharacterFrequency = make(map[string]int, entries)
	for i := 0; i < entries; i++ {
		var (
			ch    string
			count int
		)
		if ch, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return
		}
		n += n1
		if count, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
			return
		}
		n += n1
		p.CharacterFrequency[ch] = count
	}
	return
}

func (propertiesMUS) Size(p Properties) (size int) {
	size = varint.Int.Size(p.Length)
	size += ord.Bool.Size(p.IsPalindrome)
	size += varint.Int.Size(p.UniqueCharacters)
	size += varint.Int.Size(p.WordCount)
	size += IDMUS.Size(p.ContentHash)
	size += varint.Int.Size(len(p.CharacterFrequency))
	for ch, count := range p.CharacterFrequency {
		size += ord.String.Size(ch)
		size += varint.Int.Size(count)
	}
	return size
}

func (propertiesMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = varint.Int.Skip(bs); err != nil {
		return
	}
	if n1, err = ord.Bool.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	if n1, err = varint.Int.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	if n1, err = varint.Int.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	if n1, err = IDMUS.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	var entries int
	if entries, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	for i := 0; i < entries; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return
		}
		n += n1
		if n1, err = varint.Int.Skip(bs[n:]); err != nil {
			return
		}
		n += n1
	}
	return
}

type stringRecordMUS struct{}

func (stringRecordMUS) Marshal(r StringRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(r.Id, bs)
	n += ord.String.Marshal(r.Value, bs[n:])
	n += PropertiesMUS.Marshal(r.Properties, bs[n:])
	n += varint.Int64.Marshal(r.CreatedAt.UnixMicro(), bs[n:])
	n += varint.Uint64.Marshal(r.Seq, bs[n:])
	return n
}

func (stringRecordMUS) Unmarshal(bs []byte) (r StringRecord, n int, err error) {
	var n1 int
	if r.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if r.Value, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if r.Properties, n1, err = PropertiesMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	var createdAt int64
	if createdAt, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	r.CreatedAt = time.UnixMicro(createdAt).UTC()
	if r.Seq, n1, err = varint.Uint64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (stringRecordMUS) Size(r StringRecord) (size int) {
	size = IDMUS.Size(r.Id)
	size += ord.String.Size(r.Value)
	size += PropertiesMUS.Size(r.Properties)
	size += varint.Int64.Size(r.CreatedAt.UnixMicro())
	size += varint.Uint64.Size(r.Seq)
	return size
}

func (stringRecordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = IDMUS.Skip(bs); err != nil {
		return
	}
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	if n1, err = PropertiesMUS.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	if n1, err = varint.Int64.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	if n1, err = varint.Uint64.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}
