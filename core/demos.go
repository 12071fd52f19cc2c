package core

// DemoEntry pairs a display title with the template that renders its page.
type DemoEntry struct {
	Title        string `json:"title"`
	TemplateFile string `json:"template"`
}

// Demos returns the demo list in display order. A new slice is built on
// every call so handlers never share it.
func Demos() []DemoEntry {
	return []DemoEntry{
		{Title: "Component", TemplateFile: "component.html"},
		{Title: "Button", TemplateFile: "buttons.html"},
		{Title: "Link", TemplateFile: "link.html"},
		{Title: "Container", TemplateFile: "containers.html"},
		{Title: "Grid", TemplateFile: "grid.html"},
		{Title: "Lightbox", TemplateFile: "lightbox.html"},
		{Title: "Tab Container", TemplateFile: "tabcontainer.html"},
		{Title: "AJAX", TemplateFile: "ajax.html"},
	}
}

func FindDemo(templateFile string) (DemoEntry, bool) {
	for _, demo := range Demos() {
		if demo.TemplateFile == templateFile {
			return demo, true
		}
	}
	return DemoEntry{}, false
}
