package dedup

const defaultThreshold = 0.85

// Entry is the minimal view of an article the detector needs.
type Entry struct {
	Title string
	URL   string
}

type Detector struct {
	sim       TitleSimilarity
	threshold float64
}

func NewDetector(sim TitleSimilarity, threshold float64) *Detector {
	if threshold <= 0 {
		threshold = defaultThreshold
	}
	return &Detector{sim: sim, threshold: threshold}
}

// Detect returns the URLs of entries that duplicate an earlier entry.
// The first occurrence of each story is kept; a flagged entry is never
// used as a comparison base for later entries.
func (d *Detector) Detect(entries []Entry) []string {
	var flagged []string
	kept := make([]Entry, 0, len(entries))

	for _, e := range entries {
		duplicate := false
		for _, k := range kept {
			if d.sim.Score(e.Title, k.Title) > d.threshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			flagged = append(flagged, e.URL)
		} else {
			kept = append(kept, e)
		}
	}
	return flagged
}
