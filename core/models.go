package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Document IDs come from a database sequence; fingerprints are
// content-based hashes.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces an identical ID, which keeps document
// fingerprints stable across re-uploads.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Category classifies a document's content.
type Category string

const (
	CategoryEngineering Category = "Engineering"
	CategoryFinancial   Category = "Financial"
	CategoryLegal       Category = "Legal"
	CategorySafety      Category = "Safety"
	CategoryGeneral     Category = "General"
)

// DepartmentAdmin is the distinguished department value with universal read
// access. Every other department only sees its own documents.
const DepartmentAdmin = "Admin"

// Token is the stored form of a single token produced by the NLP adapter.
// The stop-word and punctuation flags drive query filtering.
type Token struct {
	Text    string
	IsStop  bool
	IsPunct bool
}

// Document represents one uploaded document and its analyzed, vectorized form.
// A document is immutable after creation except for Vector, which the
// reembed maintenance path may replace wholesale.
type Document struct {
	Id          ID
	Filename    string // sanitized storage name; collisions overwrite silently
	Title       string
	Vendor      string
	Category    Category
	Department  string // fixed at creation; the access-control boundary
	UploadedBy  string
	UploadedAt  time.Time
	Text        string  // full extracted text
	Tokens      []Token // tokenized form from the NLP adapter
	Vector      []float32
	Fingerprint ID // BLAKE2b hash of Text
}

// User identifies a requester. Identity is supplied by the session
// collaborator and trusted as-is; the core never authenticates.
type User struct {
	Id         ID
	Username   string
	Department string
}

// SearchResult is a scored, snippeted match for one query.
// Derived per request, never persisted.
type SearchResult struct {
	Document *Document
	Score    float64
	Snippet  string
}
