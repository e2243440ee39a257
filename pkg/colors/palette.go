package colors

// Basic colors.
var (
	Black   = MustParse("#000000")
	Red     = MustParse("#FF0000")
	Green   = MustParse("#00FF00")
	Yellow  = MustParse("#FFFF00")
	Blue    = MustParse("#0000FF")
	Magenta = MustParse("#FF00FF")
	Cyan    = MustParse("#00FFFF")
	White   = MustParse("#FFFFFF")
)

// Gray scale.
var (
	LightGray = MustParse("#D3D3D3")
	Gray      = MustParse("#808080")
	SlateGray = MustParse("#708090")
	DarkGray  = MustParse("#A9A9A9")
	Charcoal  = MustParse("#36454F")
)

// Extended palette.
var (
	Salmon      = MustParse("#FA8072")
	Coral       = MustParse("#FF7F50")
	Tomato      = MustParse("#FF6347")
	Crimson     = MustParse("#DC143C")
	FireBrick   = MustParse("#B22222")
	DarkRed     = MustParse("#8B0000")
	Pink        = MustParse("#FFC0CB")
	HotPink     = MustParse("#FF69B4")
	Orange      = MustParse("#FFA500")
	DarkOrange  = MustParse("#FF8C00")
	Amber       = MustParse("#FFBF00")
	Gold        = MustParse("#FFD700")
	Mustard     = MustParse("#FFDB58")
	ForestGreen = MustParse("#228B22")
	Mint        = MustParse("#98FF98")
	Emerald     = MustParse("#50C878")
	SeaGreen    = MustParse("#2E8B57")
	Olive       = MustParse("#808000")
	SkyBlue     = MustParse("#87CEEB")
	RoyalBlue   = MustParse("#4169E1")
	Navy        = MustParse("#000080")
	SteelBlue   = MustParse("#4682B4")
	Midnight    = MustParse("#191970")
	Turquoise   = MustParse("#40E0D0")
	Teal        = MustParse("#008080")
	Purple      = MustParse("#800080")
	Lavender    = MustParse("#E6E6FA")
	Orchid      = MustParse("#DA70D6")
	Violet      = MustParse("#8F00FF")
	Brown       = MustParse("#A52A2A")
	Tan         = MustParse("#D2B48C")
	Sienna      = MustParse("#A0522D")
	Chocolate   = MustParse("#D2691E")
)

// Transparent is fully transparent white.
var Transparent = Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0}
