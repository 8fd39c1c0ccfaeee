package planner

// Switcher decides which view is visible and fills day views on first use
type Switcher struct {
	registry  *Registry
	generator Generator
}

// NewSwitcher creates a switcher over registry using gen for day content
func NewSwitcher(registry *Registry, gen Generator) *Switcher {
	return &Switcher{registry: registry, generator: gen}
}

// NewSession creates a switcher over a fresh registry and the built-in templates
func NewSession() *Switcher {
	return NewSwitcher(NewRegistry(), NewGenerator())
}

// Registry returns the registry the switcher operates on
func (s *Switcher) Registry() *Registry {
	return s.registry
}

// Activate makes id the only active view. A day view gets its content
// generated the first time it is activated; later activations reuse it.
// Unknown ids and generator failures leave every view untouched.
func (s *Switcher) Activate(id string) error {
	target, err := s.registry.Lookup(id)
	if err != nil {
		return err
	}

	var content []TimeBlock
	needsLoad := target.id.IsDay() && !target.loaded
	if needsLoad {
		content, err = s.generator.Generate(id)
		if err != nil {
			return err
		}
	}

	for _, v := range s.registry.views {
		v.active = false
	}
	target.active = true

	if needsLoad {
		target.content = content
		target.loaded = true
	}
	return nil
}

// IsActive reports whether id is the active view
func (s *Switcher) IsActive(id string) (bool, error) {
	v, err := s.registry.Lookup(id)
	if err != nil {
		return false, err
	}
	return v.Active(), nil
}

// IsLoaded reports whether the content of id has been generated
func (s *Switcher) IsLoaded(id string) (bool, error) {
	v, err := s.registry.Lookup(id)
	if err != nil {
		return false, err
	}
	return v.Loaded(), nil
}

// GetContent returns the generated schedule of a day. A day that has not
// been activated yet returns an empty schedule.
func (s *Switcher) GetContent(dayID string) ([]TimeBlock, error) {
	if !ViewID(dayID).IsDay() {
		return nil, &UnknownDayError{Day: dayID}
	}
	v, err := s.registry.Lookup(dayID)
	if err != nil {
		return nil, &UnknownDayError{Day: dayID}
	}
	return v.Content(), nil
}

// Active returns the identifier of the active view
func (s *Switcher) Active() ViewID {
	for _, v := range s.registry.views {
		if v.active {
			return v.id
		}
	}
	return Overview
}
