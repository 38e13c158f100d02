package resources

import (
	"sort"

	volumetypes "github.com/docker/docker/api/types/volume"
)

// UnknownValue fills fields the engine only reports with an extra inspection
// call we never make (volume disk usage).
const UnknownValue = "unknown"

// Volume is a single row of the volumes view.
type Volume struct {
	Name       string
	Driver     string
	Mountpoint string
	Size       string
}

// FromVolume flattens an engine volume into a display record. List results
// carry no usage data unless the caller asked for it, so size is usually the
// unknown sentinel.
func FromVolume(vol *volumetypes.Volume) Volume {
	size := UnknownValue
	if vol.UsageData != nil && vol.UsageData.Size >= 0 {
		size = HumanBytes(vol.UsageData.Size)
	}
	return Volume{
		Name:       vol.Name,
		Driver:     vol.Driver,
		Mountpoint: vol.Mountpoint,
		Size:       size,
	}
}

// FromVolumeList maps and sorts a list result for display.
func FromVolumeList(vols []*volumetypes.Volume) []Volume {
	ret := make([]Volume, 0, len(vols))
	for _, v := range vols {
		if v == nil {
			continue
		}
		ret = append(ret, FromVolume(v))
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].Name < ret[j].Name
	})
	return ret
}
