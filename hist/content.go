package hist

// Content is the flat bin-content container of a histogram: one weight per
// addressable bin, stored at the dense slot of its global index, plus the
// number of fills.
type Content struct {
	weights []float64
	entries uint64
}

func newContent(nBins int) *Content {
	return &Content{weights: make([]float64, nBins)}
}

// Len returns the number of slots.
func (c *Content) Len() int { return len(c.weights) }

// Entries returns the number of fills.
func (c *Content) Entries() uint64 { return c.entries }

func (c *Content) add(slot int, weight float64) {
	c.weights[slot] += weight
	c.entries++
}

func (c *Content) at(slot int) float64 { return c.weights[slot] }

func (c *Content) reset() {
	clear(c.weights)
	c.entries = 0
}

// Fill adds one entry of weight 1 to the bin holding the point.
// It returns the global index of that bin.
func (h *Histogram) Fill(coords ...float64) (int, error) {
	return h.FillWeight(1, coords...)
}

// FillWeight adds one entry of the given weight to the bin holding the
// point. It returns the global index of that bin. Coordinates are checked
// as in GetBinIndex and nothing is recorded on error.
func (h *Histogram) FillWeight(weight float64, coords ...float64) (int, error) {
	index, err := h.GetBinIndex(coords...)
	if err != nil {
		return 0, err
	}

	slot, err := h.layout.Slot(index)
	if err != nil {
		return 0, err
	}
	h.content.add(slot, weight)

	return index, nil
}

// GetBinContent returns the summed weight of the bin with the given global
// index. Returns errs.ErrInvalidBinIndex if no bin has that index.
func (h *Histogram) GetBinContent(index int) (float64, error) {
	slot, err := h.layout.Slot(index)
	if err != nil {
		return 0, err
	}

	return h.content.at(slot), nil
}

// GetEntries returns the number of fills since creation or the last Reset.
func (h *Histogram) GetEntries() uint64 { return h.content.Entries() }

// Reset clears every bin content and the entry count. Axes are unchanged.
func (h *Histogram) Reset() { h.content.reset() }
