package docvault

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/docvault/ai/mock"
	"github.com/poiesic/docvault/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLibrary(t *testing.T) {
	t.Run("create new library", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		lib, err := NewLibrary(tmpDir, WithProvider(mock.NewMockProvider()))
		require.NoError(t, err)
		require.NotNil(t, lib)
		defer lib.Close()

		assert.NotNil(t, lib.DocumentRepository())
		assert.NotNil(t, lib.Provider())
		assert.NotNil(t, lib.backend)
		assert.NotNil(t, lib.logger)
	})

	t.Run("in-memory storage", func(t *testing.T) {
		lib, err := NewLibrary("", WithProvider(mock.NewMockProvider()), WithInMemoryStorage())
		require.NoError(t, err)
		require.NotNil(t, lib)
		defer lib.Close()
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// A file path instead of a directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		lib, err := NewLibrary(tmpFile, WithProvider(mock.NewMockProvider()))
		assert.Error(t, err)
		assert.Nil(t, lib)
	})
}

func TestLibrary_Close(t *testing.T) {
	lib, err := NewLibrary("", WithProvider(mock.NewMockProvider()), WithInMemoryStorage())
	require.NoError(t, err)
	require.NotNil(t, lib)

	err = lib.Close()
	assert.NoError(t, err)
}

func TestLibrary_FactoryMethods(t *testing.T) {
	lib, err := NewLibrary("", WithProvider(mock.NewMockProvider()), WithInMemoryStorage())
	require.NoError(t, err)
	require.NotNil(t, lib)
	defer lib.Close()

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := lib.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create searcher", func(t *testing.T) {
		searcher, err := lib.NewSearcher()
		require.NoError(t, err)
		require.NotNil(t, searcher)
	})

	t.Run("can create reembedder", func(t *testing.T) {
		reembedder := lib.NewReembedder(nil, io.Discard)
		require.NotNil(t, reembedder)
	})
}

func TestLibrary_EndToEnd(t *testing.T) {
	lib, err := NewLibrary("", WithProvider(mock.NewMockProvider()), WithInMemoryStorage())
	require.NoError(t, err)
	defer lib.Close()

	pipeline, err := lib.NewIngestionPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	path := filepath.Join(t.TempDir(), "report.txt")
	content := "Q3 Engineering Report\nTechnical specifications for the turbine."
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	uploader := core.User{Id: 1, Username: "eng_user", Department: "Engineering"}
	doc, err := pipeline.IngestFile(context.Background(), path, uploader)
	require.NoError(t, err)
	assert.Equal(t, "Q3 Engineering Report", doc.Title)
	assert.Equal(t, core.CategoryEngineering, doc.Category)

	searcher, err := lib.NewSearcher()
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), uploader, "technical turbine")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, doc.Id, results[0].Document.Id)

	reembedder := lib.NewReembedder(nil, io.Discard)
	require.NoError(t, reembedder.Run(context.Background()))
}
