// Package ingestion provides pipeline orchestration for processing uploaded documents.
//
// The Pipeline type manages the ingestion workflow for documents, including:
//   - Extracting plain text from uploaded files
//   - Deriving title, vendor, and category from the content
//   - Tokenizing and embedding the text
//   - Adding the analyzed document to storage
//
// Single files are processed synchronously so callers observe the stored
// document. Directory ingestion fans out over a worker pool.
package ingestion
