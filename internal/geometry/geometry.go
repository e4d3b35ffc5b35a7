// internal/geometry/geometry.go
package geometry

type Class string

const (
	ClassLeaderboard Class = "leaderboard"
	ClassSkyscraper  Class = "skyscraper"
	ClassStandard    Class = "standard"
)

// MicroHeight is the cutoff at or below which a size is flagged micro.
const MicroHeight = 60

// Classification pairs the aspect-ratio class with the orthogonal micro
// flag. A wide-and-short slot can be leaderboard and micro at once, so the
// two are kept as independent predicates rather than one enumeration.
type Classification struct {
	Class Class `json:"class"`
	Micro bool  `json:"micro"`
}

// ClassOf maps a pixel size to its layout class by aspect ratio, not by
// matching known slots, so arbitrary sizes degrade gracefully.
func ClassOf(width, height int) Class {
	switch {
	case float64(width) > float64(height)*1.5:
		return ClassLeaderboard
	case float64(height) > float64(width)*1.5:
		return ClassSkyscraper
	default:
		return ClassStandard
	}
}

// IsMicro reports whether a slot is too short for full copy.
func IsMicro(height int) bool {
	return height <= MicroHeight
}

func Classify(width, height int) Classification {
	return Classification{
		Class: ClassOf(width, height),
		Micro: IsMicro(height),
	}
}
