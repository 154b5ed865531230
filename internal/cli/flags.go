package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Language   string
	Format     string
	Separator  string
	BatchFile  string
	Workers    int
	LexiconDB  string
	ListPhones bool
	LogLevel   string

	// Transcription flags
	DenasalizeFinalE bool
	KeepCase         bool

	// Explanation flags
	Explain      bool
	ExplainDir   string
	ExplainModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Language:     "pl",
		Format:       "text",
		Separator:    " ",
		Workers:      4,
		LogLevel:     "info",
		ExplainModel: "gpt-4o-mini",
	}
}
