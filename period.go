package cv2pdf

// periodSeparator is an en dash (U+2013) with a space on each side.
const periodSeparator = " – "

// FormatPeriod renders a date range. An empty end is open-ended and shows
// the language's present label instead.
func FormatPeriod(start, end, present string) string {
	if end == "" {
		end = present
	}
	return start + periodSeparator + end
}
