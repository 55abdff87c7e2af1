package watch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"glance/pkg/types"

	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	names []string
	err   error
}

func (f *fakeUploader) UploadFile(_ context.Context, _ types.Path, filename string, content io.Reader) error {
	io.Copy(io.Discard, content)
	f.names = append(f.names, filename)
	return f.err
}

func newWatcher(t *testing.T, up Uploader, includes []glob.Glob) *Watcher {
	t.Helper()
	w, err := New(up, types.Path{"inbox"}, includes)
	require.NoError(t, err)
	t.Cleanup(func() {
		if w.IsRunning() {
			w.Stop()
		}
	})
	return w
}

func TestMatchesMediaOnly(t *testing.T) {
	w := newWatcher(t, &fakeUploader{}, nil)

	assert.True(t, w.Matches("/tmp/a.jpg"))
	assert.True(t, w.Matches("/tmp/clip.mp4"))
	assert.True(t, w.Matches("/tmp/shot.cr2"))
	assert.False(t, w.Matches("/tmp/notes.txt"))
	assert.False(t, w.Matches("/tmp/archive.zip"))
}

func TestMatchesHonorsIncludes(t *testing.T) {
	includes := []glob.Glob{glob.MustCompile("IMG_*")}
	w := newWatcher(t, &fakeUploader{}, includes)

	assert.True(t, w.Matches("/cam/IMG_0001.jpg"))
	assert.False(t, w.Matches("/cam/screenshot.jpg"))
	assert.False(t, w.Matches("/cam/IMG_notes.txt"), "include match still requires a media extension")
}

func TestAddDirectoryValidates(t *testing.T) {
	w := newWatcher(t, &fakeUploader{}, nil)

	assert.Error(t, w.AddDirectory("/does/not/exist"))

	file := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.Error(t, w.AddDirectory(file))

	dir := t.TempDir()
	require.NoError(t, w.AddDirectory(dir))
	require.NoError(t, w.AddDirectory(dir), "adding twice is fine")
	assert.Equal(t, []string{dir}, w.Directories())
}

func TestUploadSendsResult(t *testing.T) {
	up := &fakeUploader{}
	w := newWatcher(t, up, nil)
	require.NoError(t, w.Start())

	file := filepath.Join(t.TempDir(), "a.jpg")
	require.NoError(t, os.WriteFile(file, []byte("img"), 0o644))

	w.upload(file)

	result := <-w.Results()
	assert.Equal(t, file, result.Path)
	assert.NoError(t, result.Err)
	assert.Equal(t, []string{"a.jpg"}, up.names)
}

func TestUploadMissingFileIsSilentlySkipped(t *testing.T) {
	up := &fakeUploader{}
	w := newWatcher(t, up, nil)
	require.NoError(t, w.Start())

	w.upload(filepath.Join(t.TempDir(), "vanished.jpg"))

	select {
	case r := <-w.Results():
		t.Fatalf("unexpected result: %+v", r)
	default:
	}
	assert.Empty(t, up.names)
}

type stallingUploader struct {
	started chan struct{}
	release chan struct{}
}

func (s *stallingUploader) UploadFile(_ context.Context, _ types.Path, _ string, content io.Reader) error {
	io.Copy(io.Discard, content)
	close(s.started)
	<-s.release
	return nil
}

func TestStopDuringInFlightUploadDropsResult(t *testing.T) {
	up := &stallingUploader{started: make(chan struct{}), release: make(chan struct{})}
	w := newWatcher(t, up, nil)
	require.NoError(t, w.Start())

	file := filepath.Join(t.TempDir(), "a.jpg")
	require.NoError(t, os.WriteFile(file, []byte("img"), 0o644))

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.upload(file)
	}()

	<-up.started
	w.Stop()
	close(up.release)
	<-done

	_, open := <-w.Results()
	assert.False(t, open, "result after stop is dropped, channel stays closed")
}

func TestStartStopLifecycle(t *testing.T) {
	w := newWatcher(t, &fakeUploader{}, nil)

	require.NoError(t, w.Start())
	assert.True(t, w.IsRunning())
	assert.Error(t, w.Start(), "double start is rejected")

	w.Stop()
	assert.False(t, w.IsRunning())
	w.Stop() // idempotent

	_, open := <-w.Results()
	assert.False(t, open, "result channel closes on stop")
}
