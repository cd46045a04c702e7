package list

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/frameseq/pkg/dirlist"
	"github.com/user/frameseq/pkg/mocks"
	"github.com/user/frameseq/pkg/pipeline"
	"github.com/user/frameseq/pkg/ports"
)

func TestStage_Execute(t *testing.T) {
	fs := mocks.NewFileSystem().
		AddFiles("in", "img2.jpg", "img10.jpg", "img1.jpg", "IMG3.jpg").
		AddEntry("in", "thumbs", ports.KindDir)
	stage := NewStage(fs, mocks.NewLogger())

	result, err := stage.Execute(context.Background(), pipeline.ListInput{Dir: "in"})
	require.NoError(t, err)

	assert.Equal(t, "in", result.Dir)
	assert.Equal(t, []string{"img1.jpg", "img2.jpg", "IMG3.jpg", "img10.jpg"}, result.Names())
	assert.Equal(t, pipeline.Frame{
		Index: 2,
		Name:  "IMG3.jpg",
		Path:  filepath.Join("in", "IMG3.jpg"),
		Stem:  "IMG3",
		Ext:   "jpg",
	}, result.Frames[2])
	assert.Zero(t, result.Skipped)
}

func TestStage_ExecuteFiltersExtensions(t *testing.T) {
	fs := mocks.NewFileSystem().
		AddFiles("in", "b.PNG", "notes.txt", "a.png", "c.Jpg", "README")
	log := mocks.NewLogger()
	stage := NewStage(fs, log)

	result, err := stage.Execute(context.Background(), pipeline.ListInput{
		Dir:        "in",
		Extensions: []string{".png", "JPG", " "},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.png", "b.PNG", "c.Jpg"}, result.Names())
	assert.Equal(t, []int{0, 1, 2}, []int{result.Frames[0].Index, result.Frames[1].Index, result.Frames[2].Index})
	assert.Equal(t, 2, result.Skipped)
	assert.True(t, log.Contains(ports.LevelDebug, "2 of 5"))
}

func TestStage_ExecuteFallsBackToExecutableDir(t *testing.T) {
	fs := mocks.NewFileSystem().AddFiles("/opt/frameseq/samples", "s2", "s1")
	stage := NewStage(fs, mocks.NewLogger())

	result, err := stage.Execute(context.Background(), pipeline.ListInput{Dir: "samples"})
	require.NoError(t, err)
	assert.Equal(t, "/opt/frameseq/samples", result.Dir)
	assert.Equal(t, []string{"s1", "s2"}, result.Names())
}

func TestStage_ExecuteMissingDir(t *testing.T) {
	stage := NewStage(mocks.NewFileSystem(), mocks.NewLogger())

	_, err := stage.Execute(context.Background(), pipeline.ListInput{Dir: "nope"})
	assert.True(t, errors.Is(err, dirlist.ErrDirectoryOpenFailed))
}

func TestStage_ExecuteCancelled(t *testing.T) {
	fs := mocks.NewFileSystem().AddFiles("in", "a")
	stage := NewStage(fs, mocks.NewLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := stage.Execute(ctx, pipeline.ListInput{Dir: "in"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, fs.ReadDirCalls("in"))
}
