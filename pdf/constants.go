package pdf

const (
	// DefaultInputDir is the conventional directory for input documents
	DefaultInputDir = "input_pdfs"

	// DefaultOutputDir is the conventional directory for extraction results
	DefaultOutputDir = "output_pdfs"

	// OutputSuffix is appended to the input stem for default output names
	OutputSuffix = "_pages"

	// Extension is the only accepted input file extension (compared case-insensitively)
	Extension = ".pdf"

	// DirPermissions for output directory creation
	DirPermissions = 0755
)
