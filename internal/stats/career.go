package stats

// Career identifies one of the experience categories on the board.
type Career int

const (
	CareerEcology Career = iota
	CareerBusiness
	CareerSailing
	CareerPolitics
	CareerEntertainment
	CareerComputer
	CareerMars

	// NumCareers is the number of careers.
	NumCareers
)

// Careers lists every career in experience order.
func Careers() []Career {
	all := make([]Career, NumCareers)
	for i := range all {
		all[i] = Career(i)
	}
	return all
}

// String returns the career name.
func (c Career) String() string {
	switch c {
	case CareerEcology:
		return "Ecology"
	case CareerBusiness:
		return "Business"
	case CareerSailing:
		return "Sailing"
	case CareerPolitics:
		return "Politics"
	case CareerEntertainment:
		return "Entertainment"
	case CareerComputer:
		return "Computer"
	case CareerMars:
		return "Mars"
	default:
		return "Unknown"
	}
}

// ID returns the career identifier used in game data.
func (c Career) ID() string {
	switch c {
	case CareerEcology:
		return "ecology"
	case CareerBusiness:
		return "business"
	case CareerSailing:
		return "sailing"
	case CareerPolitics:
		return "politics"
	case CareerEntertainment:
		return "entertainment"
	case CareerComputer:
		return "computer"
	case CareerMars:
		return "mars"
	default:
		return "unknown"
	}
}

// ParseCareer returns the career with the given identifier.
func ParseCareer(id string) (Career, bool) {
	for _, c := range Careers() {
		if c.ID() == id {
			return c, true
		}
	}
	return 0, false
}

// Experience holds a level for every career, indexed by Career.
type Experience [NumCareers]int

// Level returns the experience level for a career.
func (e *Experience) Level(c Career) int {
	if c < 0 || c >= NumCareers {
		return 0
	}
	return e[c]
}

// Add raises the experience level for a career by n.
func (e *Experience) Add(c Career, n int) {
	if c < 0 || c >= NumCareers {
		return
	}
	e[c] += n
}
