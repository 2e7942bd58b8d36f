package game

// DealerPolicy decides whether the dealer draws another card given the
// current hand value. It is a pure function of (total, soft) so alternate
// house rules can be substituted without touching the round engine.
type DealerPolicy func(total int, soft bool) bool

// StandSoft17 is the house rule: hit below 17, stand on any 17 or better,
// soft or hard. This is the engine default.
func StandSoft17(total int, soft bool) bool {
	return total < 17
}

// HitSoft17 is the common alternate rule where the dealer draws again on
// a soft 17. Not selected by any shipped command; it exists to exercise
// the policy seam.
func HitSoft17(total int, soft bool) bool {
	return total < 17 || (total == 17 && soft)
}
