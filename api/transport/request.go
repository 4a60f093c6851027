package transport

import "strings"

// Command is one input line split into its keyword and the remaining argument text.
type Command struct {
	Keyword string // lower-cased so dispatch is case-insensitive
	Args    string // everything after the first space, untrimmed; empty when there is none
}

// ParseCommand trims the line and splits it on the first space.
func ParseCommand(line string) Command {
	line = strings.TrimSpace(line)
	keyword, args, _ := strings.Cut(line, " ")
	return Command{
		Keyword: strings.ToLower(keyword),
		Args:    args,
	}
}
