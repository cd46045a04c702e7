package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/frameseq/pkg/adapters/osfilesystem"
	"github.com/user/frameseq/pkg/mocks"
	"github.com/user/frameseq/pkg/ports"
)

func newTestRunner(fs ports.FileSystem) (*runner, *bytes.Buffer, *mocks.Logger) {
	var out bytes.Buffer
	log := mocks.NewLogger()
	return &runner{
		stdout:    &out,
		fs:        fs,
		newLogger: func(ports.LogLevel) ports.Logger { return log },
	}, &out, log
}

func run(r *runner, args ...string) error {
	return r.app().RunContext(context.Background(), append([]string{"frameseq"}, args...))
}

func TestList(t *testing.T) {
	fs := mocks.NewFileSystem().
		AddFiles("frames", "img2.jpg", "img10.jpg", "img1.jpg", "IMG3.jpg").
		AddEntry("frames", "sub", ports.KindDir)
	r, out, _ := newTestRunner(fs)

	require.NoError(t, run(r, "list", "frames"))
	assert.Equal(t, "img1.jpg\nimg2.jpg\nIMG3.jpg\nimg10.jpg\n", out.String())
}

func TestList_ExtensionsAndJSON(t *testing.T) {
	fs := mocks.NewFileSystem().AddFiles("frames", "b.png", "a.txt", "a.png")
	r, out, _ := newTestRunner(fs)

	require.NoError(t, run(r, "list", "--ext", "png", "--format", "json", "frames"))
	assert.Contains(t, out.String(), `"files": [`)
	assert.Contains(t, out.String(), `"a.png",`)
	assert.NotContains(t, out.String(), "a.txt")
}

func TestList_MissingDirectory(t *testing.T) {
	r, out, log := newTestRunner(mocks.NewFileSystem())

	err := run(r, "list", "nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory open failed")
	assert.Empty(t, out.String())
	assert.NotEmpty(t, log.Entries(ports.LevelError))
}

func TestList_RequiresOneArgument(t *testing.T) {
	r, _, _ := newTestRunner(mocks.NewFileSystem())
	assert.Error(t, run(r, "list"))
	assert.Error(t, run(r, "list", "a", "b"))
}

func TestList_WritesManifestFile(t *testing.T) {
	fs := mocks.NewFileSystem().AddFiles("frames", "f10", "f9")
	r, out, log := newTestRunner(fs)

	require.NoError(t, run(r, "list", "-o", "out/list.txt", "frames"))
	assert.Empty(t, out.String())

	data, ok := fs.GetFile("out/list.txt")
	require.True(t, ok)
	assert.Equal(t, "f9\nf10\n", string(data))
	assert.True(t, log.Contains(ports.LevelInfo, "out/list.txt"))
}

func TestPlan(t *testing.T) {
	fs := mocks.NewFileSystem().AddFiles("frames", "img2.jpg", "img1.jpg")
	r, out, _ := newTestRunner(fs)

	require.NoError(t, run(r, "plan", "--to", "up", "--image-format", "png", "frames"))
	assert.Equal(t,
		filepath.Join("frames", "img1.jpg")+"\t"+filepath.Join("up", "img1.png")+"\n"+
			filepath.Join("frames", "img2.jpg")+"\t"+filepath.Join("up", "img2.png")+"\n",
		out.String())
}

func TestPlan_Sequence(t *testing.T) {
	fs := mocks.NewFileSystem().AddFiles("frames", "b.jpg", "a.jpg")
	r, out, _ := newTestRunner(fs)

	require.NoError(t, run(r, "plan", "-t", "up", "--sequence", "%03d", "frames"))
	assert.Contains(t, out.String(), filepath.Join("up", "000.jpg"))
	assert.Contains(t, out.String(), filepath.Join("up", "001.jpg"))
}

func TestPlan_RequiresOutputDir(t *testing.T) {
	fs := mocks.NewFileSystem().AddFiles("frames", "a.jpg")
	r, _, _ := newTestRunner(fs)

	assert.Error(t, run(r, "plan", "frames"))
}

func TestPlan_FromConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "frameseq.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output_dir: up\nimage_format: webp\nmanifest_format: yaml\n"), 0644))

	fs := mocks.NewFileSystem().AddFiles("frames", "a.jpg")
	r, out, _ := newTestRunner(fs)

	require.NoError(t, run(r, "--config", cfgPath, "plan", "frames"))
	assert.Contains(t, out.String(), "output: "+filepath.Join("up", "a.webp"))
}

func TestQuietUsesNoopLogger(t *testing.T) {
	r, _, log := newTestRunner(mocks.NewFileSystem())

	require.Error(t, run(r, "-Q", "list", "nowhere"))
	assert.Empty(t, log.Entries(ports.LevelDebug))
}

func TestInvalidLogLevel(t *testing.T) {
	fs := mocks.NewFileSystem().AddFiles("frames", "a")
	r, _, _ := newTestRunner(fs)

	assert.Error(t, run(r, "--log-level", "loud", "list", "frames"))
}

func TestVersion(t *testing.T) {
	r, out, _ := newTestRunner(mocks.NewFileSystem())

	require.NoError(t, run(r, "version"))
	assert.Contains(t, out.String(), version)
}

func TestList_OnDisk(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"img2.jpg", "img10.jpg", "img1.jpg", "IMG3.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	r, out, _ := newTestRunner(osfilesystem.New())
	require.NoError(t, run(r, "list", dir))
	assert.Equal(t, "img1.jpg\nimg2.jpg\nIMG3.jpg\nimg10.jpg\n", out.String())
}
