package resources

import (
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/stretchr/testify/assert"
)

func TestFromImage(t *testing.T) {
	img := FromImage(types.ImageSummary{
		ID:       "sha256:3f8a5b2c91d4e0aabbccddeeff001122",
		RepoTags: []string{"nginx:1.27"},
		Size:     196923392,
	})

	assert.Equal(t, "3f8a5b2c91d4", img.ID)
	assert.Equal(t, "nginx", img.Repository)
	assert.Equal(t, "1.27", img.Tag)
	assert.Equal(t, "187.8MB", img.Size)
}

func TestFromImageUntagged(t *testing.T) {
	img := FromImage(types.ImageSummary{
		ID:   "sha256:77c0de1b4a92e0aabbccddeeff001122",
		Size: 1024,
	})

	assert.Equal(t, NoneValue, img.Repository)
	assert.Equal(t, NoneValue, img.Tag)
	assert.Equal(t, "1.0KB", img.Size)
}

func TestSplitRepoTagRegistryPort(t *testing.T) {
	repo, tag := splitRepoTag([]string{"localhost:5000/app:v1"})
	assert.Equal(t, "localhost:5000/app", repo)
	assert.Equal(t, "v1", tag)

	repo, tag = splitRepoTag([]string{"plainrepo"})
	assert.Equal(t, "plainrepo", repo)
	assert.Equal(t, NoneValue, tag)
}

func TestFromImageListSorts(t *testing.T) {
	list := FromImageList([]types.ImageSummary{
		{ID: "sha256:bbb", RepoTags: []string{"redis:7.2"}},
		{ID: "sha256:aaa", RepoTags: []string{"nginx:1.27"}},
		{ID: "sha256:ccc", RepoTags: []string{"nginx:1.25"}},
	})

	assert.Len(t, list, 3)
	assert.Equal(t, "1.25", list[0].Tag)
	assert.Equal(t, "1.27", list[1].Tag)
	assert.Equal(t, "redis", list[2].Repository)
}
