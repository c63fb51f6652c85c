// markup.go - the "CCL" angle-bracket markup interpreter.
//
// Grounded on terminal_output.go's tag-driven escape handling, generalized from its
// fixed SGR-code switch to a small closed tokenizer (tagOpen/tagClose/tagOpenClose/text)
// over a save/restore state stack.

package textmode

import "unicode/utf8"

// colorNames lists the sixteen recognized markup color names in palette-index order;
// "on_"-prefixed names select background instead of foreground.
var colorNames = [16]string{
	"black", "red", "green", "orange", "blue", "magenta", "cyan", "lgrey",
	"grey", "lred", "lgreen", "yellow", "lblue", "lmagenta", "lcyan", "white",
}

func colorIndexByName(name string) (byte, bool) {
	for i, n := range colorNames {
		if n == name {
			return byte(i), true
		}
	}
	return 0, false
}

var entityTable = map[string]rune{
	"lt":  '<',
	"gt":  '>',
	"amp": '&',
}

// Cprint interprets text as CCL markup, writing the resulting characters through the
// normal cell-writing API. Unknown tags/entities are ignored; tokenizer failures (an
// unterminated '<', a lone '<' or "</" at end of input, or "</name/>") terminate
// interpretation of the remainder without error.
func (c *Console) Cprint(text string) {
	i := 0
	for i < len(text) {
		switch text[i] {
		case '<':
			next, ok := c.parseTag(text, i)
			if !ok {
				return
			}
			i = next
		case '&':
			r, next, matched := parseEntity(text, i)
			if matched {
				c.PrintRune(r)
			}
			i = next
		default:
			r, size := utf8.DecodeRuneInString(text[i:])
			c.PrintRune(r)
			i += size
		}
	}
}

// Cprintln interprets text as CCL markup, then emits a newline.
func (c *Console) Cprintln(text string) {
	c.Cprint(text)
	c.Newline()
}

func isTagNameChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}

// isEntityNameChar matches the tokenizer's documented bug: the
// original range check duplicates the lowercase test and never reaches uppercase or
// digits, so only lowercase ASCII letters are valid entity-name characters.
func isEntityNameChar(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// parseTag consumes one tag starting at text[start]=='<' and applies its effect.
// Returns ok=false on a tokenizer failure, signaling the caller to stop entirely.
func (c *Console) parseTag(text string, start int) (int, bool) {
	i := start + 1
	if i >= len(text) {
		return i, false // "<" at EOF
	}
	closing := false
	if text[i] == '/' {
		closing = true
		i++
		if i >= len(text) {
			return i, false // "</" at EOF
		}
	}
	nameStart := i
	for i < len(text) && isTagNameChar(text[i]) {
		i++
	}
	name := text[nameStart:i]
	if i >= len(text) {
		return i, false // unterminated "<"
	}
	selfClose := false
	if text[i] == '/' {
		selfClose = true
		i++
		if i >= len(text) {
			return i, false
		}
	}
	if closing && selfClose {
		return i, false // "</foo/>"
	}
	if text[i] != '>' {
		return i, false
	}
	i++

	switch {
	case closing:
		c.closeTag()
	case selfClose:
		c.openTag(name)
		c.closeTag()
	default:
		c.openTag(name)
	}
	return i, true
}

// openTag saves the current state, then applies the named color/style change. Unknown
// tag names are ignored.
func (c *Console) openTag(name string) {
	c.Save()
	switch {
	case len(name) > 3 && name[:3] == "on_":
		if idx, ok := colorIndexByName(name[3:]); ok {
			c.SetBg(idx)
		}
	default:
		if idx, ok := colorIndexByName(name); ok {
			c.SetFg(idx)
			return
		}
		switch name {
		case "b", "strong":
			c.AddStyle(StyleBold)
		case "u":
			c.AddStyle(StyleUnderline)
		case "blink":
			c.AddStyle(StyleBlink)
		case "shiny":
			c.AddStyle(StyleShiny)
		}
	}
}

// closeTag restores the state stack, then re-applies the cursor position that was
// active just before the restore: tag boundaries never rewind the cursor, only
// colors and style.
func (c *Console) closeTag() {
	st := c.stack.top()
	col, row := st.Col, st.Row
	c.Restore()
	c.stack.top().Col, c.stack.top().Row = col, row
}

// parseEntity consumes one "&name;" entity starting at text[start]=='&'. matched is
// false for unknown or malformed entities, which are silently dropped; next is always
// advanced past whatever was consumed.
func parseEntity(text string, start int) (value rune, next int, matched bool) {
	i := start + 1
	nameStart := i
	for i < len(text) && isEntityNameChar(text[i]) {
		i++
	}
	name := text[nameStart:i]
	if i >= len(text) || text[i] != ';' {
		return 0, i, false
	}
	i++
	if r, ok := entityTable[name]; ok {
		return r, i, true
	}
	return 0, i, false
}
