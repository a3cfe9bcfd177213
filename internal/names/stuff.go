package names

// Stuff is the outcome of a verification.
type Stuff uint8

const (
	// Rejected covers invalid signatures, malformed input and primitive failures alike.
	Rejected Stuff = iota

	// Affirmed means the signature is valid for the key and payload.
	Affirmed
)

func (s Stuff) String() string {
	if s == Affirmed {
		return "affirmed"
	}
	return "rejected"
}

// IsAffirmed reports whether s is Affirmed.
func (s Stuff) IsAffirmed() bool { return s == Affirmed }
