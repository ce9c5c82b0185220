package ui

// Color helpers return the escape sequence of the active theme, or "" when
// colors are disabled.

func ColorRed() string       { return GetCurrentTheme().Error }
func ColorGreen() string     { return GetCurrentTheme().Success }
func ColorYellow() string    { return GetCurrentTheme().Warning }
func ColorBlue() string      { return GetCurrentTheme().Primary }
func ColorMagenta() string   { return GetCurrentTheme().Info }
func ColorCyan() string      { return GetCurrentTheme().Secondary }
func ColorBold() string      { return GetCurrentTheme().Bold }
func ColorUnderline() string { return GetCurrentTheme().Underline }
func ColorReset() string     { return GetCurrentTheme().Reset }

// Palette adapts the active theme to interfaces that ask for a handful of
// colors by method, such as the error handler.
type Palette struct{}

func (Palette) Red() string    { return ColorRed() }
func (Palette) Yellow() string { return ColorYellow() }
func (Palette) Green() string  { return ColorGreen() }
func (Palette) Reset() string  { return ColorReset() }
