package patch_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fwojciec/iro"
	"github.com/fwojciec/iro/patch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestPatcher(t *testing.T) {
	t.Parallel()

	t.Run("appends section and backs up original", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "kitty.conf")
		writeFile(t, path, "font_size 12\n")
		p := patch.NewPatcher()

		status, err := p.Patch(path, kitty, "background #101010\n")
		require.NoError(t, err)
		assert.Equal(t, iro.StatusAppended, status)
		assert.Equal(t, "font_size 12\n# >>> iro kitty >>>\nbackground #101010\n# <<< iro kitty <<<\n", readFile(t, path))
		assert.Equal(t, "font_size 12\n", readFile(t, p.BackupPath(path)))
		assert.Equal(t, path+".iro.bak", p.BackupPath(path))
	})

	t.Run("replaces existing section", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "kitty.conf")
		writeFile(t, path, "a\n# >>> iro kitty >>>\nold\n# <<< iro kitty <<<\nb\n")

		status, err := patch.NewPatcher().Patch(path, kitty, "new\n")
		require.NoError(t, err)
		assert.Equal(t, iro.StatusPatched, status)
		assert.Equal(t, "a\n# >>> iro kitty >>>\nnew\n# <<< iro kitty <<<\nb\n", readFile(t, path))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "kitty.conf")
		writeFile(t, path, "font_size 12\n")
		p := patch.NewPatcher()

		_, err := p.Patch(path, kitty, "background #101010\n")
		require.NoError(t, err)
		first := readFile(t, path)
		before, err := os.Stat(path)
		require.NoError(t, err)

		status, err := p.Patch(path, kitty, "background #101010\n")
		require.NoError(t, err)
		assert.Equal(t, iro.StatusPatched, status)
		assert.Equal(t, first, readFile(t, path))
		after, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, os.SameFile(before, after), "unchanged file was rewritten")
	})

	t.Run("never overwrites backup", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "kitty.conf")
		writeFile(t, path, "original\n")
		p := patch.NewPatcher()

		_, err := p.Patch(path, kitty, "one\n")
		require.NoError(t, err)
		_, err = p.Patch(path, kitty, "two\n")
		require.NoError(t, err)

		assert.Equal(t, "original\n", readFile(t, p.BackupPath(path)))
		assert.Contains(t, readFile(t, path), "two\n")
	})

	t.Run("keeps file mode", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "kitty.conf")
		writeFile(t, path, "x\n")
		require.NoError(t, os.Chmod(path, 0o600))

		_, err := patch.NewPatcher().Patch(path, kitty, "y\n")
		require.NoError(t, err)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("patches through symlink", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		real := filepath.Join(dir, "dotfiles", "kitty.conf")
		link := filepath.Join(dir, "kitty", "kitty.conf")
		require.NoError(t, os.MkdirAll(filepath.Dir(real), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Dir(link), 0o755))
		writeFile(t, real, "font_size 12\n")
		require.NoError(t, os.Symlink(real, link))
		p := patch.NewPatcher()

		status, err := p.Patch(link, kitty, "background #101010\n")
		require.NoError(t, err)
		assert.Equal(t, iro.StatusAppended, status)

		info, err := os.Lstat(link)
		require.NoError(t, err)
		assert.Equal(t, os.ModeSymlink, info.Mode()&os.ModeSymlink, "link was replaced")
		assert.Equal(t, "font_size 12\n# >>> iro kitty >>>\nbackground #101010\n# <<< iro kitty <<<\n", readFile(t, real))
		assert.Equal(t, "font_size 12\n", readFile(t, p.BackupPath(link)))

		entries, err := os.ReadDir(filepath.Dir(link))
		require.NoError(t, err)
		assert.Len(t, entries, 2, "only the link and its backup")
	})

	t.Run("skips dangling symlink", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		link := filepath.Join(dir, "kitty.conf")
		require.NoError(t, os.Symlink(filepath.Join(dir, "gone.conf"), link))

		status, err := patch.NewPatcher().Patch(link, kitty, "x\n")
		require.ErrorIs(t, err, iro.ErrFileAccess)
		assert.Equal(t, iro.StatusSkipped, status)
	})

	t.Run("skips missing file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "kitty.conf")

		status, err := patch.NewPatcher().Patch(path, kitty, "x\n")
		require.ErrorIs(t, err, iro.ErrFileAccess)
		assert.Equal(t, iro.StatusSkipped, status)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("skips missing directory", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "kitty", "kitty.conf")

		status, err := patch.NewPatcher().Patch(path, kitty, "x\n")
		require.ErrorIs(t, err, iro.ErrFileAccess)
		assert.Equal(t, iro.StatusSkipped, status)
	})

	t.Run("fails on malformed section without writing", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "kitty.conf")
		original := "# >>> iro kitty >>>\nold\n"
		writeFile(t, path, original)
		p := patch.NewPatcher()

		status, err := p.Patch(path, kitty, "x\n")
		require.ErrorIs(t, err, iro.ErrMalformedSection)
		assert.Equal(t, iro.StatusFailed, status)
		assert.Equal(t, original, readFile(t, path))
		_, statErr := os.Stat(p.BackupPath(path))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("custom backup suffix", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "foot.ini")
		writeFile(t, path, "[main]\n")
		p := patch.NewPatcher(patch.WithBackupSuffix(".orig"))

		_, err := p.Patch(path, iro.SectionFor("foot", iro.CommentHash), "[colors]\n")
		require.NoError(t, err)
		assert.Equal(t, "[main]\n", readFile(t, path+".orig"))
	})

	t.Run("serializes writers of the same file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "shared.conf")
		writeFile(t, path, "shared\n")
		p := patch.NewPatcher()

		var wg sync.WaitGroup
		for i := range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				section := iro.SectionFor(fmt.Sprintf("app%d", i), iro.CommentHash)
				_, err := p.Patch(path, section, fmt.Sprintf("value %d\n", i))
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		content := readFile(t, path)
		for i := range 8 {
			assert.Contains(t, content, fmt.Sprintf("# >>> iro app%d >>>\nvalue %d\n# <<< iro app%d <<<\n", i, i, i))
		}
		assert.Equal(t, "shared\n", readFile(t, p.BackupPath(path)))
	})
}

func TestWriteFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "colors.sh")

	require.NoError(t, patch.WriteFile(path, []byte("export A=1\n"), 0o755))
	assert.Equal(t, "export A=1\n", readFile(t, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}
