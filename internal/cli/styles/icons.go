package styles

// Nerd Font glyphs.
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconShield    = "\uf132" // shield
	IconCheck     = "\uf00c" // check
	IconX         = "\uf00d" // x
	IconFile      = "\uf15b" // file
)
