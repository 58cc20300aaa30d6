package protein

// Band names a range between two adjacent breakpoints.
type Band int

const (
	BandBelowRDA Band = iota
	BandLow
	BandGood
	BandOptimal
	BandAboveHigh
)

// Bands lists the three explained ranges in timeline order.
var Bands = []Band{BandLow, BandGood, BandOptimal}

// String returns the label shown on the band's button.
func (b Band) String() string {
	switch b {
	case BandBelowRDA:
		return "Below RDA"
	case BandLow:
		return "Low"
	case BandGood:
		return "Good"
	case BandOptimal:
		return "Optimal"
	case BandAboveHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Role is the semantic color of the band's button: warning, info, success.
func (b Band) Role() string {
	switch b {
	case BandLow:
		return "warning"
	case BandGood:
		return "info"
	case BandOptimal:
		return "success"
	default:
		return "error"
	}
}

// Bounds returns the lower and upper breakpoints of the band.
// Open-ended bands return the same value twice.
func (b Band) Bounds(t Thresholds) (lo, hi float64) {
	switch b {
	case BandBelowRDA:
		return 0, t.RDA
	case BandLow:
		return t.RDA, t.GoodMin
	case BandGood:
		return t.GoodMin, t.OptimalMin
	case BandOptimal:
		return t.OptimalMin, t.HighMin
	default:
		return t.HighMin, t.HighMin
	}
}

// Explanation is the educational copy shown when a band is expanded.
func (b Band) Explanation() string {
	switch b {
	case BandLow:
		return "The low range of protein intake spans from the RDA up to around 1.2 grams per kilogram " +
			"(normalized to height here). Many will recognize the RDA as the optimal intake of protein. " +
			"This is incorrect. The RDA is the minimum amount of protein required to prevent clinical " +
			"deficiency. It should not be your goal. You are unlikely to retain lean mass at this level - " +
			"especially in an energy deficit."
	case BandGood:
		return "The current body of evidence shows a good range of protein intake spans from around " +
			"1.2 grams per kilogram up to around 1.6 grams per kilogram (normalized to height here). " +
			"This is the range that most people will be able to retain lean mass while at maintenance. " +
			"However, it will be difficult to retain lean mass in an energy deficit in this range."
	case BandOptimal:
		return "The optimal range of protein intake spans from around 1.6 grams per kilogram up to " +
			"around 2.2 grams per kilogram (normalized to height here). This is the range that most " +
			"people will be able to retain lean mass while in an energy deficit. It is also the range " +
			"that most people will be able to gain lean mass while in an energy surplus. Going above " +
			"this range will not provide any additional benefit."
	default:
		return ""
	}
}

// Classify places a daily intake in grams on the timeline.
// Each breakpoint belongs to the band that starts at it; HighMin closes Optimal.
func Classify(grams float64, t Thresholds) Band {
	switch {
	case grams < t.RDA:
		return BandBelowRDA
	case grams < t.GoodMin:
		return BandLow
	case grams < t.OptimalMin:
		return BandGood
	case grams <= t.HighMin:
		return BandOptimal
	default:
		return BandAboveHigh
	}
}
