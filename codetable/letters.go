package codetable

// Arabic letters and marks, named after their Unicode character names.
const (
	// Shadda
	Shadda = "\u0651"

	// Short vowels
	Sukoon   = "\u0652"
	Damma    = "\u064F"
	Fatha    = "\u064E"
	Kasra    = "\u0650"
	Dammatan = "\u064C"
	Fathatan = "\u064B"
	Kasratan = "\u064D"

	// Misc
	Placeholder     = "\u25CC" // dotted circle, carrier for isolated marks
	SuperscriptAlef = "\u0670"
	Tatweel         = "\u0640"

	// Punctuation
	ArabicQuestionMark      = "\u061F"
	LeftAngleQuotationMark  = "\u00AB"
	RightAngleQuotationMark = "\u00BB"
	ArabicComma             = "\u060C"
	Period                  = "."
	Colon                   = ":"
	QuotationMark           = "\""
	EmDash                  = "\u2014"

	// Letters
	Hamza              = "\u0621"
	AlefWithMadda      = "\u0622"
	AlefWithHamzaAbove = "\u0623"
	WawWithHamza       = "\u0624"
	AlefWithHamzaBelow = "\u0625"
	YehWithHamzaAbove  = "\u0626"
	Alef               = "\u0627"
	Beh                = "\u0628"
	TehMarbuta         = "\u0629"
	Teh                = "\u062A"
	Theh               = "\u062B"
	Jeem               = "\u062C"
	Hah                = "\u062D"
	Khah               = "\u062E"
	Dal                = "\u062F"
	Thal               = "\u0630"
	Reh                = "\u0631"
	Zain               = "\u0632"
	Seen               = "\u0633"
	Sheen              = "\u0634"
	Sad                = "\u0635"
	Dad                = "\u0636"
	Tah                = "\u0637"
	Zah                = "\u0638"
	Ain                = "\u0639"
	Ghain              = "\u063A"
	Feh                = "\u0641"
	Qaf                = "\u0642"
	Kaf                = "\u0643"
	Lam                = "\u0644"
	Meem               = "\u0645"
	Noon               = "\u0646"
	Heh                = "\u0647"
	Waw                = "\u0648"
	AlefMaksura        = "\u0649"
	Yeh                = "\u064A"
	AlefWaslah         = "\u0671"
)
