package ingestion

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/docvault/ai/mock"
	"github.com/poiesic/docvault/core"
	"github.com/poiesic/docvault/storage"
	"github.com/poiesic/docvault/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.DocumentRepository {
	t.Helper()
	docRepo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		docRepo.Close()
		backend.Close()
	})
	return docRepo
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewPipeline(t *testing.T) {
	docRepo := newTestRepo(t)
	provider := mock.NewMockProvider()

	t.Run("valid configuration", func(t *testing.T) {
		pipeline, err := NewPipeline(docRepo, provider)
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("with pool size", func(t *testing.T) {
		pipeline, err := NewPipeline(docRepo, provider, WithPoolSize(2))
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("nil document repository", func(t *testing.T) {
		_, err := NewPipeline(nil, provider)
		assert.Equal(t, ErrDocumentRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewPipeline(docRepo, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})
}

func TestIngestFile(t *testing.T) {
	docRepo := newTestRepo(t)
	provider := mock.NewMockProvider()
	pipeline, err := NewPipeline(docRepo, provider)
	require.NoError(t, err)
	defer pipeline.Release()

	content := "Q3 Engineering Report\nvendor: Acme Corp\nThe technical review of the turbine passed."
	path := writeTempFile(t, t.TempDir(), "report.txt", content)

	uploader := core.User{Id: 1, Username: "eng_user", Department: "Engineering"}
	doc, err := pipeline.IngestFile(context.Background(), path, uploader)
	require.NoError(t, err)

	assert.Equal(t, core.ID(1), doc.Id)
	assert.Equal(t, "report.txt", doc.Filename)
	assert.Equal(t, "Q3 Engineering Report", doc.Title)
	assert.Equal(t, "Acme Corp", doc.Vendor)
	assert.Equal(t, core.CategoryEngineering, doc.Category)
	assert.Equal(t, "Engineering", doc.Department)
	assert.Equal(t, "eng_user", doc.UploadedBy)
	assert.Equal(t, content, doc.Text)
	assert.NotEmpty(t, doc.Tokens)
	assert.NotEmpty(t, doc.Vector)
	assert.Equal(t, core.IDFromContent(content), doc.Fingerprint)

	// Round trip through storage
	stored, err := docRepo.GetDocumentByFilename(context.Background(), "report.txt")
	require.NoError(t, err)
	assert.Equal(t, doc.Id, stored.Id)
	assert.Equal(t, doc.Text, stored.Text)
}

func TestIngestFile_MissingFileDegradesToDefaults(t *testing.T) {
	docRepo := newTestRepo(t)
	provider := mock.NewMockProvider().(*mock.MockProvider)
	pipeline, err := NewPipeline(docRepo, provider)
	require.NoError(t, err)
	defer pipeline.Release()

	uploader := core.User{Id: 1, Username: "eng_user", Department: "Engineering"}
	doc, err := pipeline.IngestFile(context.Background(), filepath.Join(t.TempDir(), "gone.txt"), uploader)
	require.NoError(t, err)

	assert.Equal(t, "gone.txt", doc.Filename)
	assert.Equal(t, "Unknown Title", doc.Title)
	assert.Equal(t, "Unknown Vendor", doc.Vendor)
	assert.Equal(t, core.CategoryGeneral, doc.Category)
	assert.Empty(t, doc.Text)
	assert.Empty(t, doc.Vector)

	// Empty text never reaches the embedder
	assert.Equal(t, 0, provider.GetMockEmbedder().CallCount())
}

func TestIngestFile_SameContentSameFingerprint(t *testing.T) {
	docRepo := newTestRepo(t)
	provider := mock.NewMockProvider()
	pipeline, err := NewPipeline(docRepo, provider)
	require.NoError(t, err)
	defer pipeline.Release()

	dir := t.TempDir()
	pathA := writeTempFile(t, dir, "a.txt", "identical body.")
	pathB := writeTempFile(t, dir, "b.txt", "identical body.")

	uploader := core.User{Id: 1, Username: "eng_user", Department: "Engineering"}
	docA, err := pipeline.IngestFile(context.Background(), pathA, uploader)
	require.NoError(t, err)
	docB, err := pipeline.IngestFile(context.Background(), pathB, uploader)
	require.NoError(t, err)

	assert.NotEqual(t, docA.Id, docB.Id)
	assert.Equal(t, docA.Fingerprint, docB.Fingerprint)
}

func TestIngestDir(t *testing.T) {
	docRepo := newTestRepo(t)
	provider := mock.NewMockProvider()
	pipeline, err := NewPipeline(docRepo, provider, WithPoolSize(2))
	require.NoError(t, err)
	defer pipeline.Release()

	dir := t.TempDir()
	writeTempFile(t, dir, "one.txt", "legal contract draft.")
	writeTempFile(t, dir, "two.txt", "incident safety report.")
	writeTempFile(t, dir, "three.txt", "plain meeting notes.")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	uploader := core.User{Id: 3, Username: "admin", Department: core.DepartmentAdmin}
	docs, err := pipeline.IngestDir(context.Background(), dir, uploader)
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	count, err := docRepo.CountDocuments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestIngestDir_MissingDirectory(t *testing.T) {
	docRepo := newTestRepo(t)
	provider := mock.NewMockProvider()
	pipeline, err := NewPipeline(docRepo, provider)
	require.NoError(t, err)
	defer pipeline.Release()

	uploader := core.User{Id: 1, Username: "eng_user", Department: "Engineering"}
	_, err = pipeline.IngestDir(context.Background(), filepath.Join(t.TempDir(), "absent"), uploader)
	assert.Error(t, err)
}
