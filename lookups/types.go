package lookups

// since there are no joins in MongoDB, text descriptions of code values are fetched by the API

// Registry of Lookup/Code Types
const (
	LTuserRole = iota
	LTdifficulty
	LTinterviewMode
	LTapplicationMode
	LTtimeline
)

// LookupType returns names of the available code types
func LookupType(lt int) string {

	var str = ""

	switch {
	case lt == LTuserRole:
		str = "user role"
	case lt == LTdifficulty:
		str = "difficulty"
	case lt == LTinterviewMode:
		str = "interview mode"
	case lt == LTapplicationMode:
		str = "application mode"
	case lt == LTtimeline:
		str = "timeline"
	}

	return str
}
