package toast

// Content is either literal text or a producer evaluated each time the
// toast is rendered.
type Content struct {
	text    string
	produce func() string
}

// Text content is drawn inside the default toast box.
func Text(s string) Content {
	return Content{text: s}
}

// Dynamic content is drawn exactly as fn returns it, including any styling.
func Dynamic(fn func() string) Content {
	return Content{produce: fn}
}

func (c Content) IsDynamic() bool {
	return c.produce != nil
}

func (c Content) Resolve() string {
	if c.produce != nil {
		return c.produce()
	}
	return c.text
}
