package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	key := Key("q", "grid_1D")
	require.NoError(t, st.Save(ctx, key, []byte(`{"q_table":{}}`)))

	data, err := st.Load(ctx, key)
	require.NoError(t, err)
	require.Equal(t, []byte(`{"q_table":{}}`), data)
}

func TestFileStoreMissingKey(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	_, err = st.Load(context.Background(), Key("q", "unseen"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreOverwrites(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	key := Key("softmax", "fruit")
	require.NoError(t, st.Save(ctx, key, []byte("old")))
	require.NoError(t, st.Save(ctx, key, []byte("new")))

	data, err := st.Load(ctx, key)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), data)
}

func TestKeyShape(t *testing.T) {
	require.Equal(t, "beccatest:q:grid_1D", Key("q", "grid_1D"))
}
