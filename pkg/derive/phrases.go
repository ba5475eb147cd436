package derive

// Codes recognised in the sex and period columns.
const (
	SexFemale    = "w"
	SexMale      = "m"
	PeriodFirst  = "1"
	PeriodSecond = "2"
)

// Phrases holds the fixed texts the deriver writes into certificates. The
// struck-through variants use combining long stroke overlays (U+0336).
type Phrases struct {
	FillSubject         string
	FirstPeriod         string
	SecondPeriod        string
	MalePronoun         string
	FemalePronoun       string
	MaleFormOfAddress   string
	FemaleFormOfAddress string
	NotCrossedOut       string
	Not                 string
	PickedBox           string
	UnpickedBox         string
	NextLevelNone       string
	ReligionLabel       string
}

// DefaultPhrases returns the German certificate wording.
func DefaultPhrases() Phrases {
	return Phrases{
		FillSubject:         "……………………………………………*)",
		FirstPeriod:         "Schulhalbjahr /S̶c̶h̶u̶l̶j̶a̶h̶r̶",
		SecondPeriod:        "1̶.̶ ̶S̶c̶h̶u̶l̶h̶a̶l̶b̶j̶a̶h̶r̶ /Schuljahr",
		MalePronoun:         "S̶i̶e̶ /Er",
		FemalePronoun:       "Sie /E̶r̶",
		MaleFormOfAddress:   "D̶i̶e̶ ̶S̶c̶h̶ü̶l̶e̶r̶i̶n̶ /Der Schüler",
		FemaleFormOfAddress: "Die Schülerin /D̶e̶r̶ ̶S̶c̶h̶ü̶l̶e̶r̶",
		NotCrossedOut:       "n̶i̶c̶h̶t̶",
		Not:                 "nicht",
		PickedBox:           "☒",
		UnpickedBox:         "☐",
		NextLevelNone:       "/",
		ReligionLabel:       "Religion",
	}
}
