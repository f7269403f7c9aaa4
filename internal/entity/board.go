package entity

type ViewMode string

const (
	ViewToday     ViewMode = "today"
	ViewUpcoming  ViewMode = "upcoming"
	ViewAll       ViewMode = "all"
	ViewCompleted ViewMode = "completed"
)

func (v ViewMode) Valid() bool {
	switch v {
	case ViewToday, ViewUpcoming, ViewAll, ViewCompleted:
		return true
	}
	return false
}

// Snapshot is the whole board state as handed to and from persistence.
type Snapshot struct {
	Tasks           []Task    `json:"tasks"`
	Projects        []Project `json:"projects"`
	CurrentView     ViewMode  `json:"current_view"`
	SelectedProject string    `json:"selected_project,omitempty"`
	SearchQuery     string    `json:"search_query,omitempty"`
}

func (s Snapshot) Clone() Snapshot {
	c := s
	c.Tasks = make([]Task, len(s.Tasks))
	for i, t := range s.Tasks {
		c.Tasks[i] = t.Clone()
	}
	c.Projects = append([]Project{}, s.Projects...)
	return c
}

// BoardState is the navigation part of the board.
type BoardState struct {
	CurrentView     ViewMode `json:"current_view"`
	SelectedProject string   `json:"selected_project"`
	SearchQuery     string   `json:"search_query"`
}
