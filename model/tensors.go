package model

// SplitTensors holds the vectorized arrays for one dataset split.
// Stories and Questions are padded id sequences (leading zeros, values
// right-aligned); Answers are one-hot vectors of length vocabulary size + 1.
type SplitTensors struct {
	Stories   [][]int `json:"stories"`
	Questions [][]int `json:"questions"`
	Answers   [][]int `json:"answers"`
}

// Len returns the number of examples in the split.
func (t *SplitTensors) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Stories)
}
