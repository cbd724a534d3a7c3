package view

// Scroll region constants.
const (
	TickerWidthFloor   = 6500
	TickerWidthPerItem = 200
	NewsWidthFloor     = 4000
	NewsWidthPerItem   = 300

	// scrollSpeed is in pixels per second.
	scrollSpeed = 50
)

// TapeStyle is the derived width and animation duration of a scrolling region.
type TapeStyle struct {
	Width    int    `json:"width"`
	Duration string `json:"duration"`
}

// ScrollWidth returns max(floor, count*perItem).
func ScrollWidth(count, floor, perItem int) int {
	return max(floor, count*perItem)
}

func newTapeStyle(count, floor, perItem int) TapeStyle {
	width := ScrollWidth(count, floor, perItem)
	return TapeStyle{
		Width:    width,
		Duration: formatSeconds(float64(width) / scrollSpeed),
	}
}

func TickerTapeStyle(count int) TapeStyle {
	return newTapeStyle(count, TickerWidthFloor, TickerWidthPerItem)
}

func NewsTapeStyle(count int) TapeStyle {
	return newTapeStyle(count, NewsWidthFloor, NewsWidthPerItem)
}
