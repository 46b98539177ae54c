package vectorstore

import (
	"context"
	"log"
	"os"
	"testing"

	"ai-salescoach-be/pkg/database"
	"ai-salescoach-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespace(t *testing.T) {
	id := uuid.MustParse("a2b94f4c-b674-433b-90be-65a91a37e7a3")
	assert.Equal(t, "user-a2b94f4c-b674-433b-90be-65a91a37e7a3", Namespace(id))
}

// Requires a live Postgres with pgvector; skips otherwise.
func TestPgStoreRoundTrip(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ChunkVector{}))

	store := NewPgStore(db)
	ctx := context.Background()

	ownerId := uuid.New()
	docId := uuid.New()
	ns := Namespace(ownerId)

	vec := embedding.FallbackVector("pricing guidance", 768)
	rec := Record{
		Id:         uuid.New(),
		DocumentId: docId,
		ChunkIndex: 0,
		Text:       "Premium tier includes 24/7 support.",
		Vector:     vec,
		Metadata:   map[string]interface{}{"document_name": "pricing"},
	}
	require.NoError(t, store.Upsert(ctx, ns, rec))

	// Querying with the same vector must rank the chunk first.
	matches, err := store.Query(ctx, ns, vec, 5)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, rec.Text, matches[0].Text)
	assert.InDelta(t, 1.0, matches[0].Score, 0.001)

	// Other namespaces must not see it.
	foreign, err := store.Query(ctx, Namespace(uuid.New()), vec, 5)
	require.NoError(t, err)
	for _, m := range foreign {
		assert.NotEqual(t, rec.Id, m.Id)
	}

	// Upsert on the same id replaces, not duplicates.
	rec.Text = "Premium tier includes 24/7 support and SLAs."
	require.NoError(t, store.Upsert(ctx, ns, rec))
	matches, err = store.Query(ctx, ns, vec, 5)
	require.NoError(t, err)
	count := 0
	for _, m := range matches {
		if m.Id == rec.Id {
			count++
			assert.Equal(t, rec.Text, m.Text)
		}
	}
	assert.Equal(t, 1, count)

	require.NoError(t, store.DeleteByDocument(ctx, ns, docId))
	matches, err = store.Query(ctx, ns, vec, 5)
	require.NoError(t, err)
	for _, m := range matches {
		assert.NotEqual(t, docId, m.DocumentId)
	}
}
