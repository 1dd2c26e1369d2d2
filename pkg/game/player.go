package game

import (
	"regexp"

	petname "github.com/dustinkirkland/golang-petname"
)

const MaxNickLength = 16

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-]+`)

// Nickname strips everything but letters, digits, dashes and underscores.
// An empty result is replaced by a generated name.
func Nickname(nick string) string {
	nick = nickRegexp.ReplaceAllString(nick, "")
	if len(nick) > MaxNickLength {
		nick = nick[:MaxNickLength]
	} else if nick == "" {
		nick = petname.Generate(2, "-")
		if len(nick) > MaxNickLength {
			nick = nick[:MaxNickLength]
		}
	}

	return nick
}
