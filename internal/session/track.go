package session

// NumChairs 赛道上离散椅子的数量，索引域为 [0, 81]
const NumChairs = 82

// ValidChair 椅子索引是否在赛道范围内
func ValidChair(index int) bool {
	return index >= 0 && index < NumChairs
}

// ChairToX maps a chair index to a horizontal pixel offset on a track of the
// given width. Out-of-range indices are clamped to the track, so the mapping
// is total: ChairToX(0, w) == 0 and ChairToX(81, w) == 81*w/82.
func ChairToX(index int, trackWidth float64) float64 {
	if index < 0 {
		index = 0
	}
	if index > NumChairs-1 {
		index = NumChairs - 1
	}
	return float64(index) * trackWidth / NumChairs
}
