package planner

// View is one mutually exclusive visual state of the planner
type View struct {
	id      ViewID
	active  bool
	loaded  bool
	content []TimeBlock
}

// ID returns the view identifier
func (v *View) ID() ViewID {
	return v.id
}

// Active reports whether this is the visible view
func (v *View) Active() bool {
	return v.active
}

// Loaded reports whether the view content has been generated.
// The overview has no generated content and is always loaded.
func (v *View) Loaded() bool {
	return v.id == Overview || v.loaded
}

// Content returns a copy of the generated time blocks
func (v *View) Content() []TimeBlock {
	if len(v.content) == 0 {
		return nil
	}
	blocks := make([]TimeBlock, len(v.content))
	copy(blocks, v.content)
	return blocks
}

// Registry holds the fixed set of views for one session
type Registry struct {
	views []*View
	byID  map[ViewID]*View
}

// NewRegistry creates the eight views with the overview active
func NewRegistry() *Registry {
	r := &Registry{
		views: make([]*View, 0, len(Order)),
		byID:  make(map[ViewID]*View, len(Order)),
	}
	for _, id := range Order {
		v := &View{id: id}
		r.views = append(r.views, v)
		r.byID[id] = v
	}
	r.byID[Overview].active = true
	return r
}

// Lookup returns the view with the given identifier
func (r *Registry) Lookup(id string) (*View, error) {
	v, ok := r.byID[ViewID(id)]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return v, nil
}

// Views returns all views in declared order
func (r *Registry) Views() []*View {
	views := make([]*View, len(r.views))
	copy(views, r.views)
	return views
}
