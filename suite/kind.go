package suite

// Kind identifies one of the four lifecycle hook points.
type Kind int

const (
	// BeforeEach hooks run before every non-ignored case.
	BeforeEach Kind = iota
	// AfterEach hooks run after every non-ignored case, on every exit path.
	AfterEach
	// BeforeAll hooks run once before the suite's cases.
	BeforeAll
	// AfterAll hooks run once after all cases have been processed.
	AfterAll
)

func (k Kind) String() string {
	switch k {
	case BeforeEach:
		return "before-each"
	case AfterEach:
		return "after-each"
	case BeforeAll:
		return "before-all"
	case AfterAll:
		return "after-all"
	default:
		return "unknown"
	}
}
