package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside ILIKE ... ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(strings.TrimSpace(s))
}
