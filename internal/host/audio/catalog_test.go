package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeAsset(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("ID3"), 0o600))

	return path
}

func TestCatalog_List(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "adhan_makkah.mp3")
	writeAsset(t, dir, "Mishary.ogg")
	writeAsset(t, dir, "alafasy.MP3")
	writeAsset(t, dir, "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.mp3"), 0o750))

	refs, err := NewCatalog(dir, nil).List()
	require.NoError(t, err)
	require.Equal(t, []string{
		AssetDefault, AssetMakkah, AssetMadinah, AssetTraditional,
		"Mishary", "alafasy",
	}, refs)
}

func TestCatalog_ListMissingDir(t *testing.T) {
	t.Parallel()

	refs, err := NewCatalog(filepath.Join(t.TempDir(), "missing"), nil).List()
	require.NoError(t, err)
	require.Equal(t, BuiltinAssets(), refs)
}

func TestCatalog_Resolve(t *testing.T) {
	t.Parallel()

	var (
		dir     = t.TempDir()
		makkah  = writeAsset(t, dir, "adhan_makkah.ogg")
		exact   = writeAsset(t, dir, "custom.wav")
		catalog = NewCatalog(dir, []string{".mp3", ".ogg"})
	)

	path, err := catalog.Resolve(AssetMakkah)
	require.NoError(t, err)
	require.Equal(t, makkah, path)

	path, err = catalog.Resolve("custom.wav")
	require.NoError(t, err)
	require.Equal(t, exact, path)

	path, err = catalog.Resolve(exact)
	require.NoError(t, err)
	require.Equal(t, exact, path)

	for _, ref := range []string{"", AssetDefault, "../etc/passwd", filepath.Join(dir, "absent.mp3")} {
		_, err = catalog.Resolve(ref)
		require.ErrorIs(t, err, ErrAssetNotFound, ref)
	}
}
