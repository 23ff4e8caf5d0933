package eseries

// e24Base is the IEC 60063 E24 mantissa table, one decade starting at ten.
var e24Base = []float64{
	10, 11, 12, 13, 15, 16, 18, 20, 22, 24, 27, 30,
	33, 36, 39, 43, 47, 51, 56, 62, 68, 75, 82, 91,
}

// e192Base is the IEC 60063 E192 mantissa table, one decade starting at ten.
var e192Base = []float64{
	10.0, 10.1, 10.2, 10.4, 10.5, 10.6, 10.7, 10.9, 11.0, 11.1,
	11.3, 11.4, 11.5, 11.7, 11.8, 12.0, 12.1, 12.3, 12.4, 12.6,
	12.7, 12.9, 13.0, 13.2, 13.3, 13.5, 13.7, 13.8, 14.0, 14.2,
	14.3, 14.5, 14.7, 14.9, 15.0, 15.2, 15.4, 15.6, 15.8, 16.0,
	16.2, 16.4, 16.5, 16.7, 16.9, 17.2, 17.4, 17.6, 17.8, 18.0,
	18.2, 18.4, 18.7, 18.9, 19.1, 19.3, 19.6, 19.8, 20.0, 20.3,
	20.5, 20.8, 21.0, 21.3, 21.5, 21.8, 22.1, 22.3, 22.6, 22.9,
	23.2, 23.4, 23.7, 24.0, 24.3, 24.6, 24.9, 25.2, 25.5, 25.8,
	26.1, 26.4, 26.7, 27.1, 27.4, 27.7, 28.0, 28.4, 28.7, 29.1,
	29.4, 29.8, 30.1, 30.5, 30.9, 31.2, 31.6, 32.0, 32.4, 32.8,
	33.2, 33.6, 34.0, 34.4, 34.8, 35.2, 35.7, 36.1, 36.5, 37.0,
	37.4, 37.9, 38.3, 38.8, 39.2, 39.7, 40.2, 40.7, 41.2, 41.7,
	42.2, 42.7, 43.2, 43.7, 44.2, 44.8, 45.3, 45.9, 46.4, 47.0,
	47.5, 48.1, 48.7, 49.3, 49.9, 50.5, 51.1, 51.7, 52.3, 53.0,
	53.6, 54.2, 54.9, 55.6, 56.2, 56.9, 57.6, 58.3, 59.0, 59.7,
	60.4, 61.2, 61.9, 62.6, 63.4, 64.2, 64.9, 65.7, 66.5, 67.3,
	68.1, 69.0, 69.8, 70.6, 71.5, 72.3, 73.2, 74.1, 75.0, 75.9,
	76.8, 77.7, 78.7, 79.6, 80.6, 81.6, 82.5, 83.5, 84.5, 85.6,
	86.6, 87.6, 88.7, 89.8, 90.9, 92.0, 93.1, 94.2, 95.3, 96.5,
	97.6, 98.8,
}

// decimate keeps every len(higher)/k-th entry of higher, starting at index
// zero, producing a k-entry mantissa list. The caller guarantees k divides
// len(higher) evenly for the standard series (24/{3,6,12} and 192/{48,96}).
func decimate(higher []float64, k int) []float64 {
	stride := len(higher) / k
	out := make([]float64, 0, k)
	for i := 0; i < len(higher); i += stride {
		out = append(out, higher[i])
	}

	return out
}

// baseMantissa resolves a series name to its mantissa table. Names derived
// by decimation are computed on demand; E24 and E192 return their base
// tables directly.
func baseMantissa(name string) ([]float64, error) {
	switch name {
	case "E24":
		return append([]float64(nil), e24Base...), nil
	case "E192":
		return append([]float64(nil), e192Base...), nil
	case "E12":
		return decimate(e24Base, 12), nil
	case "E6":
		return decimate(e24Base, 6), nil
	case "E3":
		return decimate(e24Base, 3), nil
	case "E96":
		return decimate(e192Base, 96), nil
	case "E48":
		return decimate(e192Base, 48), nil
	default:
		return nil, ErrUnknownSeries
	}
}
