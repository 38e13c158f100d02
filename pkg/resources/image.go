package resources

import (
	"sort"
	"strings"

	"github.com/docker/docker/api/types"
)

// Image is a single row of the images view.
type Image struct {
	ID         string
	Repository string
	Tag        string
	Size       string
}

// FromImage flattens an engine image summary into a display record. Untagged
// images report the none sentinel for repository and tag.
func FromImage(img types.ImageSummary) Image {
	repo, tag := splitRepoTag(img.RepoTags)
	return Image{
		ID:         ShortID(img.ID),
		Repository: repo,
		Tag:        tag,
		Size:       HumanBytes(img.Size),
	}
}

// FromImageList maps and sorts a list result for display.
func FromImageList(imgs []types.ImageSummary) []Image {
	ret := make([]Image, len(imgs))
	for i, img := range imgs {
		ret[i] = FromImage(img)
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Repository != ret[j].Repository {
			return ret[i].Repository < ret[j].Repository
		}
		return ret[i].Tag < ret[j].Tag
	})
	return ret
}

func splitRepoTag(repoTags []string) (repo, tag string) {
	repo, tag = NoneValue, NoneValue
	if len(repoTags) == 0 {
		return
	}

	// Split on the last colon so registry ports survive
	// (localhost:5000/app:v1 -> localhost:5000/app, v1).
	first := repoTags[0]
	if idx := strings.LastIndex(first, ":"); idx >= 0 {
		repo, tag = first[:idx], first[idx+1:]
	} else {
		repo = first
	}
	return
}
