package matching

type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityFair      Quality = "fair"
	QualityWeak      Quality = "weak"
)

// QualityPolicy holds the inclusive lower bounds for each match quality.
type QualityPolicy struct {
	Excellent int
	Good      int
	Fair      int
}

var DefaultQualityPolicy = QualityPolicy{Excellent: 80, Good: 60, Fair: 40}

func (p QualityPolicy) Classify(percent int) Quality {
	switch {
	case percent >= p.Excellent:
		return QualityExcellent
	case percent >= p.Good:
		return QualityGood
	case percent >= p.Fair:
		return QualityFair
	default:
		return QualityWeak
	}
}

type MatchResult struct {
	MatchedSkills []string
	MissingSkills []string
	PercentMatch  int
	MatchQuality  Quality
	TotalRequired int
}

type Scorer struct {
	Policy QualityPolicy
}

func NewScorer(policy QualityPolicy) Scorer {
	return Scorer{Policy: policy}
}

func (s Scorer) Score(seeker, job SkillSet) MatchResult {
	matched := seeker.Intersect(job)
	missing := job.Difference(seeker)

	percent := 0
	if job.Len() > 0 {
		percent = 100 * matched.Len() / job.Len()
	}
	percent = clampInt(percent, 0, 100)

	return MatchResult{
		MatchedSkills: matched.Sorted(),
		MissingSkills: missing.Sorted(),
		PercentMatch:  percent,
		MatchQuality:  s.Policy.Classify(percent),
		TotalRequired: job.Len(),
	}
}

func Score(seeker, job SkillSet) MatchResult {
	return NewScorer(DefaultQualityPolicy).Score(seeker, job)
}

func Classify(percent int) Quality {
	return DefaultQualityPolicy.Classify(percent)
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
