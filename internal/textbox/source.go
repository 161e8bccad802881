package textbox

// Replay returns a Source that yields cmds in order and then reports
// ErrSourceExhausted.
func Replay(cmds ...Command) Source {
	return &replay{cmds: cmds}
}

type replay struct {
	cmds []Command
	pos  int
}

func (r *replay) Next() (Command, error) {
	if r.pos >= len(r.cmds) {
		return Command{}, ErrSourceExhausted
	}
	c := r.cmds[r.pos]
	r.pos++
	return c, nil
}

// Type expands s into one InsertChar command per rune.
func Type(s string) []Command {
	out := make([]Command, 0, len(s))
	for _, r := range s {
		out = append(out, Char(r))
	}
	return out
}
