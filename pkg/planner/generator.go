package planner

// TimeBlock is one scheduled entry within a day
type TimeBlock struct {
	Time        string `json:"time" yaml:"time"`
	Activity    string `json:"activity" yaml:"activity"`
	Description string `json:"description" yaml:"description"`
}

// Generator produces the ordered schedule for a day
type Generator interface {
	Generate(dayID string) ([]TimeBlock, error)
}

// TemplateGenerator builds schedules from static per-day templates
type TemplateGenerator struct {
	templates map[ViewID]DayTemplate
}

// NewGenerator returns a generator backed by the built-in week templates
func NewGenerator() *TemplateGenerator {
	return &TemplateGenerator{templates: weekTemplates}
}

// Generate returns a fresh copy of the schedule for dayID
func (g *TemplateGenerator) Generate(dayID string) ([]TimeBlock, error) {
	tmpl, ok := g.templates[ViewID(dayID)]
	if !ok {
		return nil, &UnknownDayError{Day: dayID}
	}
	blocks := make([]TimeBlock, len(tmpl.Blocks))
	copy(blocks, tmpl.Blocks)
	return blocks, nil
}

// Template returns the template of a day, including its title and theme
func (g *TemplateGenerator) Template(dayID string) (DayTemplate, error) {
	tmpl, ok := g.templates[ViewID(dayID)]
	if !ok {
		return DayTemplate{}, &UnknownDayError{Day: dayID}
	}
	blocks := make([]TimeBlock, len(tmpl.Blocks))
	copy(blocks, tmpl.Blocks)
	tmpl.Blocks = blocks
	return tmpl, nil
}
