package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(id, name string) types.Snapshot {
	return types.Snapshot{
		ID:   id,
		Name: name,
		Date: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Data: types.ResumeDocument{
			PersonalDetails: types.PersonalDetails{Name: "Ada", Email: "ada@example.com"},
			Summary:         "A summary.",
			Experience: []types.Experience{
				{Company: "Acme", Position: "Engineer", Highlights: []string{"one"}},
			},
			Skills: []types.Skill{{Name: "Go", Category: types.CategoryLanguage}},
		},
		Template:    types.TemplateModernTech,
		ColorScheme: types.DefaultColorScheme(),
	}
}

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	snapshot := testSnapshot("resume-1", "My Resume")

	require.NoError(t, store.Save(ctx, snapshot.ID, snapshot))

	loaded, err := store.Load(ctx, snapshot.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snapshot, *loaded, "round-trip must be exact")
}

func TestFileStore_LoadAbsentKey(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.Load(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStore_SavedSnapshotIsIndependentCopy(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	snapshot := testSnapshot("resume-1", "My Resume")
	require.NoError(t, store.Save(ctx, snapshot.ID, snapshot))

	// Mutate the in-session value after saving.
	snapshot.Data.PersonalDetails.Name = "Changed"
	snapshot.Data.Skills[0].Name = "Rust"

	loaded, err := store.Load(ctx, "resume-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", loaded.Data.PersonalDetails.Name)
	assert.Equal(t, "Go", loaded.Data.Skills[0].Name)
}

func TestFileStore_Remove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	snapshot := testSnapshot("resume-1", "My Resume")
	require.NoError(t, store.Save(ctx, snapshot.ID, snapshot))

	require.NoError(t, store.Remove(ctx, "resume-1"))

	loaded, err := store.Load(ctx, "resume-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	var notFound *NotFoundError
	err = store.Remove(ctx, "resume-1")
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "resume-1", notFound.Key)
}

func TestFileStore_ListAllExcludesSessionKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := testSnapshot("resume-1", "First")
	second := testSnapshot("resume-2", "Second")
	second.Date = first.Date.Add(time.Hour)
	session := testSnapshot("session", "Auto Save")

	require.NoError(t, store.Save(ctx, first.ID, first))
	require.NoError(t, store.Save(ctx, second.ID, second))
	require.NoError(t, store.Save(ctx, types.LastSessionKey, session))

	infos, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2, "the reserved session key must not be listed")
	assert.Equal(t, "resume-2", infos[0].ID, "newest first")
	assert.Equal(t, "resume-1", infos[1].ID)
}

func TestFileStore_LoadRejectsInvalidPayload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	bad := `{"id": "x", "name": "n", "date": "2025-06-01", "template": "not-a-template",
		"color_scheme": {"primary":"","secondary":"","text":"","background":"","accent":""},
		"data": {"personal_details": {}, "summary": ""}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(bad), 0o644))

	var invalid *InvalidSnapshotError
	_, err = store.Load(context.Background(), "bad")
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "bad", invalid.Key)
}

func TestValidateSnapshotJSON_AcceptsWellFormed(t *testing.T) {
	snapshot := testSnapshot("resume-1", "My Resume")
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, snapshot.ID, snapshot))

	loaded, err := store.Load(ctx, snapshot.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
}
