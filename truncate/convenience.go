package truncate

// Left keeps the first maxLength runes of s followed by the default marker.
func Left(s string, maxLength uint) string {
	return New(s).Truncate(maxLength)
}

// Right keeps the last maxLength runes of s preceded by the default marker.
func Right(s string, maxLength uint) string {
	return New(s).RightToLeft().Truncate(maxLength)
}
