package seedphrase

// sampleWordlist is a bundled subset of the BIP39 English word list. It
// exists so Validate and Suggest have something to check against out of
// the box; a production deployment should supply the full canonical
// 2048-word BIP39 list via WithWordlist instead.
var sampleWordlist = []string{
	"abandon", "ability", "able", "about", "above", "absent", "absorb", "abstract",
	"absurd", "abuse", "access", "accident", "account", "accuse", "achieve", "acid",
	"acoustic", "acquire", "across", "act", "action", "actor", "actress", "actual",
	"adapt", "add", "addict", "address", "adjust", "admit", "adult", "advance",
	"advice", "aerobic", "affair", "afford", "afraid", "again", "agent", "agree",
	"ahead", "aim", "air", "airport", "aisle", "alarm", "album", "alcohol",
}
