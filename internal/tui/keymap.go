package tui

// Key bindings of the table surface. Kept in one place so the help line and
// the update loop cannot drift apart.
const (
	keyQuit     = "q"
	keyDayView  = "d"
	keyWeekView = "w"
	keyMonth    = "m"
	keyAround   = "a"
	keyPrev     = "left"
	keyNext     = "right"
	keyToday    = "t"
	keyPresence = "u"
	keySave     = "s"
	keyUp       = "up"
	keyDown     = "down"
	keyEditCame = "c"
	keyEditWent = "g"
	keyEditNote = "n"
)

const helpLine = "d/w/m/a view · ←/→ page · t today · u clock in/out · c/g/n edit · s save · q quit"
