package heatmap

// GetColor picks the scale entry for a day's intensity relative to the
// range maximum. The bucket boundary for scale index i is i/len(colors);
// the highest boundary at or below value/max wins. The second return is
// false when no color applies (empty scale or zero value) so the caller
// decides the substitute.
func GetColor(colors []string, max, value float64) (string, bool) {
	if len(colors) == 0 || value == 0 {
		return "", false
	}

	intensity := value / max
	color := colors[0]
	for i := 1; i < len(colors); i++ {
		if intensity < float64(i)/float64(len(colors)) {
			break
		}
		color = colors[i]
	}
	return color, true
}
