package managelinks

// Mode constants for the link panel state machine
const (
	ModeTable = iota
	ModeDetails
	ModeCreate
	ModeEdit
	ModeDeleteConfirm
)

// DefaultWidth is the default terminal width fallback
const DefaultWidth = 80
