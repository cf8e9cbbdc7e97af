package atlas

// minAtlasDim is the floor for the size search. Repeated halving stops
// here so the search terminates even for degenerate 1x1 inputs.
const minAtlasDim = 1

// searchSize right-sizes the final atlas of a run. The caller has
// already established that pool packs completely at w by h; searchSize
// halves both dimensions until the pool stops fitting (or the floor is
// reached), then steps back up one level and returns the layout at the
// smallest size that still drains the pool.
func searchSize(pool []Texture, w, h int, opts Options) ([]Node, int, int) {
	for w/2 >= minAtlasDim && h/2 >= minAtlasDim {
		_, leftovers := layoutAtlas(pool, w/2, h/2, opts)
		if len(leftovers) > 0 {
			break
		}
		w, h = w/2, h/2
	}
	placed, _ := layoutAtlas(pool, w, h, opts)
	return placed, w, h
}
