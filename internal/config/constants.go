package config

// Garden sizing bounds. The garden is a fixed-size grid created once per
// player; the count is configurable within the range the shipped UI can lay out.
const (
	DefaultPlotCount = 6
	MinPlotCount     = 4
	MaxPlotCount     = 9
)
