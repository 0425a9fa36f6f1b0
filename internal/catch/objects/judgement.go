package objects

// HitResult is the outcome type recorded for a judged object.
type HitResult int

const (
	HitResultNone HitResult = iota
	HitResultMiss
	HitResultGreat
	HitResultLargeTickMiss
	HitResultLargeTickHit
	HitResultSmallTickMiss
	HitResultSmallTickHit
	HitResultIgnoreMiss
	HitResultLargeBonus
)

// String returns a human-readable name for the result.
func (r HitResult) String() string {
	switch r {
	case HitResultNone:
		return "None"
	case HitResultMiss:
		return "Miss"
	case HitResultGreat:
		return "Great"
	case HitResultLargeTickMiss:
		return "LargeTickMiss"
	case HitResultLargeTickHit:
		return "LargeTickHit"
	case HitResultSmallTickMiss:
		return "SmallTickMiss"
	case HitResultSmallTickHit:
		return "SmallTickHit"
	case HitResultIgnoreMiss:
		return "IgnoreMiss"
	case HitResultLargeBonus:
		return "LargeBonus"
	default:
		return "Unknown"
	}
}

// IsHit reports whether the result counts as a successful catch.
func (r HitResult) IsHit() bool {
	switch r {
	case HitResultGreat, HitResultLargeTickHit, HitResultSmallTickHit, HitResultLargeBonus:
		return true
	default:
		return false
	}
}

// AffectsCombo reports whether the result builds or breaks combo.
func (r HitResult) AffectsCombo() bool {
	switch r {
	case HitResultMiss, HitResultGreat, HitResultLargeTickMiss, HitResultLargeTickHit:
		return true
	default:
		return false
	}
}

// Judgement describes the best and worst result an object can receive.
type Judgement struct {
	MaxResult HitResult
	MinResult HitResult
}

// JudgementFor returns the judgement awarded by objects of the given kind.
func JudgementFor(k Kind) Judgement {
	switch k {
	case KindDroplet:
		return Judgement{MaxResult: HitResultLargeTickHit, MinResult: HitResultLargeTickMiss}
	case KindTinyDroplet:
		return Judgement{MaxResult: HitResultSmallTickHit, MinResult: HitResultSmallTickMiss}
	case KindBanana:
		return Judgement{MaxResult: HitResultLargeBonus, MinResult: HitResultIgnoreMiss}
	default:
		return Judgement{MaxResult: HitResultGreat, MinResult: HitResultMiss}
	}
}

// JudgementResult records how an object was judged.
// Type moves from HitResultNone to a terminal value once and is never reassigned.
type JudgementResult struct {
	Judgement    Judgement
	Type         HitResult
	TimeAbsolute float64 // Clock time when the result was committed
	TimeOffset   float64 // Commit time minus the object's StartTime
}

// NewJudgementResult creates an unset result for the given judgement.
func NewJudgementResult(j Judgement) *JudgementResult {
	return &JudgementResult{Judgement: j}
}

// HasResult reports whether a type has been committed.
func (r *JudgementResult) HasResult() bool {
	return r != nil && r.Type != HitResultNone
}

// IsHit reports whether the committed type is a hit.
func (r *JudgementResult) IsHit() bool {
	return r.HasResult() && r.Type.IsHit()
}
