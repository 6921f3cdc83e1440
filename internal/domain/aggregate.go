package domain

// Aggregate is the whole per-user snapshot. Stores load and save it as a unit.
type Aggregate struct {
	Tasks              []Task          `json:"tasks" yaml:"tasks"`
	Shopping           []ShoppingItem  `json:"shopping" yaml:"shopping"`
	Ideas              []Idea          `json:"ideas" yaml:"ideas"`
	Notes              []Note          `json:"notes" yaml:"notes"`
	Calendar           []CalendarEntry `json:"calendar" yaml:"calendar"`
	Events             []Event         `json:"events" yaml:"events"`
	Habits             []Habit         `json:"habits" yaml:"habits"`
	Routines           []Routine       `json:"routines" yaml:"routines"`
	CustomCategories   []Category      `json:"customCategories" yaml:"customCategories"`
	ShoppingCategories []Category      `json:"shoppingCategories" yaml:"shoppingCategories"`
	TaskCategories     []Category      `json:"taskCategories" yaml:"taskCategories"`
	HabitCategories    []Category      `json:"habitCategories" yaml:"habitCategories"`
}

// NewAggregate returns an empty snapshot with every list allocated
func NewAggregate() *Aggregate {
	a := &Aggregate{}
	a.Normalize()
	return a
}

// Normalize replaces missing lists with empty ones and repairs habit
// completion ordering. Snapshots written by older clients may omit fields.
func (a *Aggregate) Normalize() {
	if a.Tasks == nil {
		a.Tasks = []Task{}
	}
	if a.Shopping == nil {
		a.Shopping = []ShoppingItem{}
	}
	if a.Ideas == nil {
		a.Ideas = []Idea{}
	}
	if a.Notes == nil {
		a.Notes = []Note{}
	}
	if a.Calendar == nil {
		a.Calendar = []CalendarEntry{}
	}
	if a.Events == nil {
		a.Events = []Event{}
	}
	if a.Habits == nil {
		a.Habits = []Habit{}
	}
	if a.Routines == nil {
		a.Routines = []Routine{}
	}
	for _, kind := range CategoryKinds {
		if list := a.Categories(kind); *list == nil {
			*list = []Category{}
		}
	}
	for i := range a.Habits {
		a.Habits[i].normalize()
	}
	for i := range a.Routines {
		if a.Routines[i].SelectedDays == nil {
			a.Routines[i].SelectedDays = []Weekday{}
		}
	}
}

// Categories returns a pointer to the custom category list of kind so callers
// can modify it in place. Ideas use the customCategories list.
func (a *Aggregate) Categories(kind CategoryKind) *[]Category {
	switch kind {
	case CategoryTask:
		return &a.TaskCategories
	case CategoryShopping:
		return &a.ShoppingCategories
	case CategoryHabit:
		return &a.HabitCategories
	default:
		return &a.CustomCategories
	}
}

// CountCategoryUsage returns how many entities of kind carry the label
func (a *Aggregate) CountCategoryUsage(kind CategoryKind, name string) int {
	n := 0
	switch kind {
	case CategoryTask:
		for _, t := range a.Tasks {
			if t.Category == name {
				n++
			}
		}
	case CategoryShopping:
		for _, s := range a.Shopping {
			if s.Category == name {
				n++
			}
		}
	case CategoryIdea:
		for _, i := range a.Ideas {
			if i.Category == name {
				n++
			}
		}
	case CategoryHabit:
		for _, h := range a.Habits {
			if h.Category == name {
				n++
			}
		}
	}
	return n
}

// Habit returns the habit with the given id, or nil
func (a *Aggregate) Habit(id string) *Habit {
	if i := IndexByID(a.Habits, id); i >= 0 {
		return &a.Habits[i]
	}
	return nil
}

// Routine returns the routine with the given id, or nil
func (a *Aggregate) Routine(id string) *Routine {
	if i := IndexByID(a.Routines, id); i >= 0 {
		return &a.Routines[i]
	}
	return nil
}
