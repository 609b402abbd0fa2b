package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the stored types. The document record
// format is small and changes rarely, so the codecs are maintained by hand
// rather than generated.

var (
	IDMUS       = idMUS{}
	TokenMUS    = tokenMUS{}
	DocumentMUS = documentMUS{}
)

type idMUS struct{}

func (idMUS) Marshal(v ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	raw, n, err := varint.Uint64.Unmarshal(bs)
	return ID(raw), n, err
}

func (idMUS) Size(v ID) int {
	return varint.Uint64.Size(uint64(v))
}

type tokenMUS struct{}

func (tokenMUS) Marshal(v Token, bs []byte) (n int) {
	n = ord.String.Marshal(v.Text, bs)
	n += ord.Bool.Marshal(v.IsStop, bs[n:])
	n += ord.Bool.Marshal(v.IsPunct, bs[n:])
	return n
}

func (tokenMUS) Unmarshal(bs []byte) (v Token, n int, err error) {
	v.Text, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.IsStop, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.IsPunct, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	return
}

func (tokenMUS) Size(v Token) (size int) {
	size = ord.String.Size(v.Text)
	size += ord.Bool.Size(v.IsStop)
	size += ord.Bool.Size(v.IsPunct)
	return size
}

type documentMUS struct{}

func (s documentMUS) Marshal(v Document, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Filename, bs[n:])
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Vendor, bs[n:])
	n += ord.String.Marshal(string(v.Category), bs[n:])
	n += ord.String.Marshal(v.Department, bs[n:])
	n += ord.String.Marshal(v.UploadedBy, bs[n:])
	n += varint.Int64.Marshal(v.UploadedAt.UnixMicro(), bs[n:])
	n += ord.String.Marshal(v.Text, bs[n:])
	n += varint.Int.Marshal(len(v.Tokens), bs[n:])
	for i := range v.Tokens {
		n += TokenMUS.Marshal(v.Tokens[i], bs[n:])
	}
	n += varint.Int.Marshal(len(v.Vector), bs[n:])
	for i := range v.Vector {
		n += varint.Float32.Marshal(v.Vector[i], bs[n:])
	}
	n += IDMUS.Marshal(v.Fingerprint, bs[n:])
	return n
}

func (s documentMUS) Unmarshal(bs []byte) (v Document, n int, err error) {
	var n1 int
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	if v.Filename, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Title, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Vendor, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	var category string
	if category, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	v.Category = Category(category)
	n += n1
	if v.Department, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.UploadedBy, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	var uploadedAt int64
	if uploadedAt, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	v.UploadedAt = time.UnixMicro(uploadedAt).UTC()
	n += n1
	if v.Text, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	var tokenCount int
	if tokenCount, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if tokenCount > 0 {
		v.Tokens = make([]Token, tokenCount)
		for i := 0; i < tokenCount; i++ {
			if v.Tokens[i], n1, err = TokenMUS.Unmarshal(bs[n:]); err != nil {
				return v, n + n1, err
			}
			n += n1
		}
	}
	var vectorLen int
	if vectorLen, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if vectorLen > 0 {
		v.Vector = make([]float32, vectorLen)
		for i := 0; i < vectorLen; i++ {
			if v.Vector[i], n1, err = varint.Float32.Unmarshal(bs[n:]); err != nil {
				return v, n + n1, err
			}
			n += n1
		}
	}
	v.Fingerprint, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	return v, n, err
}

func (s documentMUS) Size(v Document) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Filename)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Vendor)
	size += ord.String.Size(string(v.Category))
	size += ord.String.Size(v.Department)
	size += ord.String.Size(v.UploadedBy)
	size += varint.Int64.Size(v.UploadedAt.UnixMicro())
	size += ord.String.Size(v.Text)
	size += varint.Int.Size(len(v.Tokens))
	for i := range v.Tokens {
		size += TokenMUS.Size(v.Tokens[i])
	}
	size += varint.Int.Size(len(v.Vector))
	for i := range v.Vector {
		size += varint.Float32.Size(v.Vector[i])
	}
	size += IDMUS.Size(v.Fingerprint)
	return size
}
