package editor

// Clipboard holds the last yanked line. The zero value is empty.
type Clipboard struct {
	text string
	set  bool
}

func (c Clipboard) Get() (string, bool) {
	return c.text, c.set
}

func (c *Clipboard) Set(text string) {
	c.text = text
	c.set = true
}

func (c *Clipboard) Clear() {
	*c = Clipboard{}
}
