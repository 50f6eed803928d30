package constant

type Position string

const (
	PositionUnset            Position = "Select Position"
	PositionSoftwareEngineer Position = "Software Engineer"
	PositionDataScientist    Position = "Data Scientist"
	PositionProductManager   Position = "Product Manager"
	PositionUXDesigner       Position = "UX Designer"
)

// Valid reports whether p is one of the selectable positions. The unset
// sentinel is not valid.
func (p Position) Valid() bool {
	switch p {
	case PositionSoftwareEngineer, PositionDataScientist, PositionProductManager, PositionUXDesigner:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type PhonePrefix string

const (
	PhonePrefixIndia     PhonePrefix = "+91"
	PhonePrefixUS        PhonePrefix = "+1"
	PhonePrefixUK        PhonePrefix = "+44"
	PhonePrefixAustralia PhonePrefix = "+61"

	DefaultPhonePrefix = PhonePrefixIndia
)

// PhonePrefixes lists the dialing prefixes a stored phone number may start with.
var PhonePrefixes = []PhonePrefix{PhonePrefixIndia, PhonePrefixUS, PhonePrefixUK, PhonePrefixAustralia}

// PhoneDigits is the length of the subscriber part of a phone number.
const PhoneDigits = 10

// Patient change events published after a successful write.
const (
	EventPatientCreated = "patient.created"
	EventPatientUpdated = "patient.updated"
	EventPatientDeleted = "patient.deleted"
)

type contextKey string

const RequestIDKey contextKey = "request_id"
